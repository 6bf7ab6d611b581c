package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

func named(m model.Match, n1, n2, winner string, round *string, created time.Time) model.Match {
	m.Wrestler1Name = n1
	m.Wrestler2Name = n2
	m.WinnerName = winner
	m.Round = round
	m.CreatedAt = created
	return m
}

func tournamentFixture() (model.Tournament, []model.Match) {
	day := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)
	t := model.Tournament{ID: "t1", Name: "County Open", Date: &day}
	matches := []model.Match{
		named(bout("m4", "d", "a", ptr("d"), model.MatchTypeTechFall), "Dan (Bears)", "Ann (Eagles)", "Dan (Bears)", ptr("Final"), baseTime.Add(3*time.Hour)),
		named(bout("m1", "a", "b", ptr("a"), model.MatchTypePin), "Ann (Eagles)", "Ben - Tigers", "Ann (Eagles)", ptr("Quarterfinal"), baseTime),
		named(bout("m2", "c", "d", ptr("c"), model.MatchTypePin), "Cy (Eagles)", "Dan (Bears)", "Cy (Eagles)", ptr("Quarterfinal"), baseTime.Add(time.Hour)),
		named(bout("m3", "a", "c", nil, model.MatchTypeDecision), "Ann (Eagles)", "Cy (Eagles)", "", ptr("Semifinal"), baseTime.Add(2*time.Hour)),
	}
	return t, matches
}

func TestSummarizeTournament(t *testing.T) {
	tour, matches := tournamentFixture()

	got := analytics.SummarizeTournament(tour, matches)

	require.NotNil(t, got.Date)
	assert.Equal(t, "2025-01-18", *got.Date)
	assert.Equal(t, 4, got.TotalMatches)
	assert.Equal(t, 3, got.TotalWins)
	assert.Equal(t, 3, got.ParticipatingTeams)
	assert.Equal(t, model.MatchTypeCounts{Pins: 2, Decisions: 1, TechFalls: 1, MajorDecisions: 0}, got.MatchTypes)
}

func TestSummarizeTournament_NoMatchesNoDate(t *testing.T) {
	got := analytics.SummarizeTournament(model.Tournament{ID: "t", Name: "Empty"}, nil)
	assert.Equal(t, model.TournamentStats{TournamentID: "t", Name: "Empty"}, got)
}

func TestParticipatingTeams_SkipsMissingNames(t *testing.T) {
	m := bout("m", "a", "b", nil, model.MatchTypeDecision)
	m.Wrestler1Name = "Ann (Eagles)"
	assert.Equal(t, 1, analytics.ParticipatingTeams([]model.Match{m}))
}

func TestDetailTournament_OrdersAndDenormalizes(t *testing.T) {
	tour, matches := tournamentFixture()

	got := analytics.DetailTournament(tour, matches)

	require.Len(t, got.Matches, 4)
	ids := []string{got.Matches[0].ID, got.Matches[1].ID, got.Matches[2].ID, got.Matches[3].ID}
	assert.Equal(t, []string{"m1", "m2", "m3", "m4"}, ids)
	assert.Nil(t, got.Matches[2].WinnerName)
	require.NotNil(t, got.Matches[0].WinnerName)
	assert.Equal(t, "Ann (Eagles)", *got.Matches[0].WinnerName)
	assert.Equal(t, model.MatchTypePin, got.Matches[0].MatchType)
	assert.Equal(t, []string{"Final", "Quarterfinal", "Semifinal"}, got.Rounds)
	assert.Equal(t, 4, got.TotalMatches)

	// input order untouched
	assert.Equal(t, "m4", matches[0].ID)
}

func TestDetailTournament_UnknownNames(t *testing.T) {
	got := analytics.DetailTournament(model.Tournament{ID: "t"}, []model.Match{bout("m", "a", "b", ptr("a"), model.MatchTypePin)})
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "Unknown", got.Matches[0].Wrestler1Name)
	assert.Equal(t, "Unknown", got.Matches[0].Wrestler2Name)
	assert.Equal(t, "", got.Matches[0].Round)
	assert.Nil(t, got.Matches[0].WinnerName)
	assert.Equal(t, []string{}, got.Rounds, "a match without a round offers no round label")
}

func TestDetailTournament_MixedRounds(t *testing.T) {
	tour, matches := tournamentFixture()
	matches = append(matches, named(bout("m5", "b", "d", ptr("b"), model.MatchTypeDecision),
		"Ben - Tigers", "Dan (Bears)", "Ben - Tigers", nil, baseTime.Add(4*time.Hour)))

	got := analytics.DetailTournament(tour, matches)

	assert.Equal(t, []string{"Final", "Quarterfinal", "Semifinal"}, got.Rounds)
	for _, r := range got.Rounds {
		assert.NotEmpty(t, analytics.FilterMatchesByRound(got.Matches, r), r)
	}
	assert.Len(t, got.Matches, 5)
}

func TestTournamentTeamPerformance(t *testing.T) {
	tour, matches := tournamentFixture()

	got := analytics.DetailTournament(tour, matches).TeamPerformance

	// Eagles: m1 win, m2 win, m3 both slots (no winner), m4 loss -> 2 of 5.
	// Bears: m2 loss, m4 win -> 1 of 2. Tigers: m1 loss -> 0 of 1.
	assert.Equal(t, []model.TournamentTeamPerformance{
		{Team: "Bears", Wins: 1, Matches: 2, WinRate: 50},
		{Team: "Eagles", Wins: 2, Matches: 5, WinRate: 40},
		{Team: "Tigers", Wins: 0, Matches: 1, WinRate: 0},
	}, got)
}

func TestTournamentTeamPerformance_TiesKeepFirstSeen(t *testing.T) {
	matches := []model.Match{
		named(bout("m1", "a", "b", ptr("a"), model.MatchTypePin), "Ann (Owls)", "Ben (Foxes)", "", nil, baseTime),
		named(bout("m2", "b", "a", ptr("b"), model.MatchTypePin), "Ben (Foxes)", "Ann (Owls)", "", nil, baseTime),
	}
	got := analytics.TournamentTeamPerformance(matches)
	require.Len(t, got, 2)
	assert.Equal(t, "Owls", got[0].Team)
	assert.Equal(t, "Foxes", got[1].Team)
	assert.Equal(t, 50, got[0].WinRate)

	assert.Equal(t, []model.TournamentTeamPerformance{}, analytics.TournamentTeamPerformance(nil))
}

func TestFilterMatchesByRound(t *testing.T) {
	tour, matches := tournamentFixture()
	details := analytics.DetailTournament(tour, matches)

	assert.Len(t, analytics.FilterMatchesByRound(details.Matches, ""), 4)
	assert.Len(t, analytics.FilterMatchesByRound(details.Matches, "all"), 4)
	assert.Len(t, analytics.FilterMatchesByRound(details.Matches, "Quarterfinal"), 2)
	// equality only, no substring matching
	assert.Empty(t, analytics.FilterMatchesByRound(details.Matches, "final"))
	assert.Len(t, analytics.FilterMatchesByRound(details.Matches, "Final"), 1)
}
