package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
)

func TestTournamentService_ListTournamentsWithStats(t *testing.T) {
	svc := service.NewTournamentService(seedStore().Store(), service.Settings{}, quietLogger())

	got, err := svc.ListTournamentsWithStats(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	open := got[0]
	assert.Equal(t, "Spring Open", open.Name)
	require.NotNil(t, open.Date)
	assert.Equal(t, "2025-03-01", *open.Date)
	assert.Equal(t, 2, open.TotalMatches)
	assert.Equal(t, 2, open.TotalWins)
	assert.Equal(t, 3, open.ParticipatingTeams)
	assert.Equal(t, model.MatchTypeCounts{Pins: 1, Decisions: 1}, open.MatchTypes)

	duals := got[1]
	assert.Equal(t, 1, duals.TotalMatches)
	assert.Equal(t, 2, duals.ParticipatingTeams)
	assert.Equal(t, model.MatchTypeCounts{TechFalls: 1}, duals.MatchTypes)
}

func TestTournamentService_ListTournamentsWithStats_MatchReadFails(t *testing.T) {
	store := seedStore()
	store.matchesErr = errors.New("boom")
	svc := service.NewTournamentService(store.Store(), service.Settings{}, quietLogger())

	got, err := svc.ListTournamentsWithStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.TournamentStats{}, got, "no tournament is reported with zeroed counts")
}

func TestTournamentService_GetTournamentDetails_MatchReadFails(t *testing.T) {
	store := seedStore()
	store.matchesErr = errors.New("boom")
	svc := service.NewTournamentService(store.Store(), service.Settings{}, quietLogger())

	got, err := svc.GetTournamentDetails(context.Background(), openID, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTournamentService_GetTournamentDetails_NonCanonicalID(t *testing.T) {
	svc := service.NewTournamentService(seedStore().Store(), service.Settings{}, quietLogger())

	got, err := svc.GetTournamentDetails(context.Background(), strings.ToUpper(openID), "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, openID, got.TournamentID)
	assert.Equal(t, 2, got.TotalMatches)
}

func TestTournamentService_GetTournamentDetails(t *testing.T) {
	svc := service.NewTournamentService(seedStore().Store(), service.Settings{}, quietLogger())

	cases := []struct {
		name      string
		round     string
		wantIDs   []string
		wantTotal int
	}{
		{"all_rounds", "", []string{"m1", "m2"}, 2},
		{"all_keyword", "all", []string{"m1", "m2"}, 2},
		{"semi_only", "Semi", []string{"m2"}, 2},
		{"unknown_round", "Quarter", []string{}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.GetTournamentDetails(context.Background(), openID, tc.round)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantTotal, got.TotalMatches, "summary ignores the round filter")
			assert.Equal(t, []string{"Final", "Semi"}, got.Rounds)
			ids := make([]string, 0, len(got.Matches))
			for _, m := range got.Matches {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestTournamentService_GetTournamentDetails_Names(t *testing.T) {
	svc := service.NewTournamentService(seedStore().Store(), service.Settings{}, quietLogger())
	got, err := svc.GetTournamentDetails(context.Background(), openID, "Semi")
	require.NoError(t, err)
	require.Len(t, got.Matches, 1)
	m := got.Matches[0]
	assert.Equal(t, "Alice (Eagles)", m.Wrestler1Name)
	assert.Equal(t, "Carl", m.Wrestler2Name)
	require.NotNil(t, m.WinnerName)
	assert.Equal(t, "Carl", *m.WinnerName)
}

func TestTournamentService_GetTournamentDetails_NotFoundAndInvalid(t *testing.T) {
	svc := service.NewTournamentService(seedStore().Store(), service.Settings{}, quietLogger())

	got, err := svc.GetTournamentDetails(context.Background(), ghostID, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.GetTournamentDetails(context.Background(), "spring-open", "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTournamentService_ListTournamentRefs(t *testing.T) {
	store := seedStore()
	svc := service.NewTournamentService(store.Store(), service.Settings{}, quietLogger())

	refs, err := svc.ListTournamentRefs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.TournamentRef{{ID: openID, Name: "Spring Open"}, {ID: dualsID, Name: "Winter Duals"}}, refs)

	store.tournamentsErr = errors.New("down")
	refs, err = svc.ListTournamentRefs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, refs)
}
