package analytics

import (
	"cmp"
	"slices"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

const unknownWrestler = "Unknown"

// CountMatchTypes tallies the four named buckets over every match given.
func CountMatchTypes(matches []model.Match) model.MatchTypeCounts {
	var c model.MatchTypeCounts
	for _, m := range matches {
		switch m.MatchType {
		case model.MatchTypePin:
			c.Pins++
		case model.MatchTypeDecision:
			c.Decisions++
		case model.MatchTypeTechFall:
			c.TechFalls++
		case model.MatchTypeMajorDecision:
			c.MajorDecisions++
		}
	}
	return c
}

// ParticipatingTeams counts distinct resolved teams across both wrestler slots.
// Slots whose name was not joined are skipped.
func ParticipatingTeams(matches []model.Match) int {
	teams := make(map[string]struct{})
	for _, m := range matches {
		if m.Wrestler1Name != "" {
			teams[ResolveTeamName(m.Wrestler1Name)] = struct{}{}
		}
		if m.Wrestler2Name != "" {
			teams[ResolveTeamName(m.Wrestler2Name)] = struct{}{}
		}
	}
	return len(teams)
}

// SummarizeTournament computes the tournament rollup from its matches.
func SummarizeTournament(t model.Tournament, matches []model.Match) model.TournamentStats {
	out := model.TournamentStats{
		TournamentID:       t.ID,
		Name:               t.Name,
		TotalMatches:       len(matches),
		ParticipatingTeams: ParticipatingTeams(matches),
		MatchTypes:         CountMatchTypes(matches),
	}
	if t.Date != nil {
		d := t.Date.Format(dateLayout)
		out.Date = &d
	}
	for _, m := range matches {
		if m.HasWinner() {
			out.TotalWins++
		}
	}
	return out
}

// DetailTournament adds the display match list, ordered by creation time ascending,
// the distinct round labels available for filtering and the per-team record.
// Matches without a round are listed but offer no round label.
func DetailTournament(t model.Tournament, matches []model.Match) model.TournamentDetails {
	ordered := slices.Clone(matches)
	slices.SortStableFunc(ordered, func(a, b model.Match) int { return a.CreatedAt.Compare(b.CreatedAt) })

	rows := make([]model.TournamentMatch, len(ordered))
	rounds := make([]string, 0)
	seen := make(map[string]struct{})
	for i, m := range ordered {
		row := model.TournamentMatch{
			ID:             m.ID,
			Wrestler1Name:  orUnknown(m.Wrestler1Name),
			Wrestler2Name:  orUnknown(m.Wrestler2Name),
			Wrestler1Score: m.Wrestler1Score,
			Wrestler2Score: m.Wrestler2Score,
			MatchType:      m.MatchType,
		}
		if m.WinnerName != "" {
			name := m.WinnerName
			row.WinnerName = &name
		}
		if m.Round != nil {
			row.Round = *m.Round
		}
		if _, ok := seen[row.Round]; !ok && row.Round != "" {
			seen[row.Round] = struct{}{}
			rounds = append(rounds, row.Round)
		}
		rows[i] = row
	}
	slices.Sort(rounds)

	return model.TournamentDetails{
		TournamentStats: SummarizeTournament(t, matches),
		Rounds:          rounds,
		TeamPerformance: TournamentTeamPerformance(ordered),
		Matches:         rows,
	}
}

// TournamentTeamPerformance credits each bout to the resolved teams of both slots.
// Output is ordered by win rate descending; ties keep first-seen team order.
func TournamentTeamPerformance(matches []model.Match) []model.TournamentTeamPerformance {
	index := make(map[string]int)
	out := make([]model.TournamentTeamPerformance, 0)
	team := func(name string) *model.TournamentTeamPerformance {
		key := ResolveTeamName(orUnknown(name))
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.TournamentTeamPerformance{Team: key})
		}
		return &out[i]
	}

	for _, m := range matches {
		t1 := team(m.Wrestler1Name)
		t1.Matches++
		t2 := team(m.Wrestler2Name)
		t2.Matches++
		// a pointer from team does not survive the next append
		switch {
		case m.WonBy(m.Wrestler1ID):
			team(m.Wrestler1Name).Wins++
		case m.WonBy(m.Wrestler2ID):
			team(m.Wrestler2Name).Wins++
		}
	}
	for i := range out {
		out[i].WinRate = winPercentage(out[i].Wins, out[i].Matches)
	}
	slices.SortStableFunc(out, func(a, b model.TournamentTeamPerformance) int {
		return cmp.Compare(b.WinRate, a.WinRate)
	})
	return out
}

// FilterMatchesByRound keeps matches whose round equals round exactly.
// An empty round or "all" disables the filter.
func FilterMatchesByRound(matches []model.TournamentMatch, round string) []model.TournamentMatch {
	if round == "" || round == "all" {
		return matches
	}
	out := make([]model.TournamentMatch, 0, len(matches))
	for _, m := range matches {
		if m.Round == round {
			out = append(out, m)
		}
	}
	return out
}

func orUnknown(name string) string {
	if name == "" {
		return unknownWrestler
	}
	return name
}
