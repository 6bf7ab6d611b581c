// Package contract holds behavioural suites every repository implementation must pass.
// Storage-specific test files provide factories; the suites only talk to the interfaces.
package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

// MissingID is a well-formed id that no seed ever uses.
const MissingID = "00000000-0000-0000-0000-000000000000"

// Seed is the fixture every factory must load before handing out repositories:
//
//	tournaments: Spring Open (2025-03-01), Winter Duals (2025-01-15)
//	wrestlers:   "Alice (Eagles)" 125, "Bob - Hawks" 125, "Carl" (no weight class)
//	matches (creation order):
//	  m1 Spring Open  Alice v Bob   winner Alice pin      round "Final"
//	  m2 Spring Open  Alice v Carl  winner Carl  decision round "Semi"
//	  m3 Winter Duals Bob v Carl    winner Bob   tech_fall
//	  m4 no event     Alice v Bob   no winner    forfeit
type Seed struct {
	SpringOpen, WinterDuals string
	Alice, Bob, Carl        string
	M1, M2, M3, M4          string
}

type StoreFactory func(t *testing.T) (repository.Store, Seed, func())

// RunStoreContract exercises every read repository plus tx and ping against seeded data.
func RunStoreContract(t *testing.T, makeStore StoreFactory) {
	t.Helper()

	t.Run("wrestler_get_and_not_found", func(t *testing.T) {
		st, seed, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		got, err := st.Wrestlers.GetByID(ctx, seed.Alice)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Alice (Eagles)" || got.WeightClass == nil || *got.WeightClass != 125 {
			t.Fatalf("mismatch: %+v", got)
		}
		if _, err := st.Wrestlers.GetByID(ctx, MissingID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if _, err := st.Wrestlers.GetByID(ctx, "not-a-uuid"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
		}
	})

	t.Run("wrestler_list_and_weight_classes", func(t *testing.T) {
		st, _, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		ws, err := st.Wrestlers.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(ws) != 3 || ws[0].Name != "Alice (Eagles)" || ws[2].Name != "Carl" {
			t.Fatalf("unexpected order: %+v", ws)
		}
		classes, err := st.Wrestlers.ListWeightClasses(ctx)
		if err != nil {
			t.Fatalf("weight classes: %v", err)
		}
		if len(classes) != 1 || classes[0] != 125 {
			t.Fatalf("unexpected weight classes: %v", classes)
		}
	})

	t.Run("tournament_get_list_refs", func(t *testing.T) {
		st, seed, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		got, err := st.Tournaments.GetByID(ctx, seed.SpringOpen)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Spring Open" || got.Date == nil || got.Date.Format(time.DateOnly) != "2025-03-01" {
			t.Fatalf("mismatch: %+v", got)
		}
		list, err := st.Tournaments.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 || list[0].ID != seed.SpringOpen {
			t.Fatalf("expected most recent first: %+v", list)
		}
		refs, err := st.Tournaments.ListRefs(ctx)
		if err != nil {
			t.Fatalf("refs: %v", err)
		}
		if len(refs) != 2 || refs[0].Name != "Spring Open" || refs[1].Name != "Winter Duals" {
			t.Fatalf("unexpected refs: %+v", refs)
		}
		if _, err := st.Tournaments.GetByID(ctx, MissingID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("matches_by_wrestler_newest_first", func(t *testing.T) {
		st, seed, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		ms, err := st.Matches.ListByWrestler(context.Background(), seed.Alice)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(ms) != 3 || ms[0].ID != seed.M4 || ms[2].ID != seed.M1 {
			t.Fatalf("unexpected matches: %+v", ms)
		}
		if ms[2].TournamentName != "Spring Open" || ms[2].WinnerName != "Alice (Eagles)" {
			t.Fatalf("joins not populated: %+v", ms[2])
		}
		if ms[0].WinnerID != nil || ms[0].TournamentID != nil {
			t.Fatalf("expected null winner and tournament: %+v", ms[0])
		}
	})

	t.Run("matches_by_tournament_oldest_first", func(t *testing.T) {
		st, seed, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		ms, err := st.Matches.ListByTournament(context.Background(), seed.SpringOpen)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(ms) != 2 || ms[0].ID != seed.M1 || ms[1].ID != seed.M2 {
			t.Fatalf("unexpected matches: %+v", ms)
		}
		if ms[0].Round == nil || *ms[0].Round != "Final" || ms[0].MatchType != model.MatchTypePin {
			t.Fatalf("unexpected row: %+v", ms[0])
		}
	})

	t.Run("matches_with_dates_and_decided", func(t *testing.T) {
		st, seed, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		all, err := st.Matches.ListWithTournamentDates(ctx, nil)
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if len(all) != 4 || all[0].TournamentDate == nil || all[3].TournamentDate != nil {
			t.Fatalf("unexpected dated matches: %+v", all)
		}
		carl := seed.Carl
		own, err := st.Matches.ListWithTournamentDates(ctx, &carl)
		if err != nil {
			t.Fatalf("own: %v", err)
		}
		if len(own) != 2 {
			t.Fatalf("expected 2 matches for Carl, got %d", len(own))
		}
		decided, err := st.Matches.ListDecided(ctx, nil)
		if err != nil {
			t.Fatalf("decided: %v", err)
		}
		if len(decided) != 3 {
			t.Fatalf("expected 3 decided, got %d", len(decided))
		}
		bob := seed.Bob
		bobWins, err := st.Matches.ListDecided(ctx, &bob)
		if err != nil {
			t.Fatalf("bob wins: %v", err)
		}
		if len(bobWins) != 1 || bobWins[0].ID != seed.M3 {
			t.Fatalf("unexpected wins: %+v", bobWins)
		}
		bulk, err := st.Matches.ListAll(ctx)
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if len(bulk) != 4 || bulk[0].ID != seed.M1 {
			t.Fatalf("unexpected bulk read: %+v", bulk)
		}
	})

	t.Run("read_tx_sees_data", func(t *testing.T) {
		st, _, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		var n int
		err := st.Tx.WithinReadTx(context.Background(), func(ctx context.Context) error {
			ws, err := st.Wrestlers.List(ctx)
			n = len(ws)
			return err
		})
		if err != nil || n != 3 {
			t.Fatalf("WithinReadTx: n=%d err=%v", n, err)
		}
	})

	t.Run("read_tx_propagates_error", func(t *testing.T) {
		st, _, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		marker := errors.New("boom")
		err := st.Tx.WithinReadTx(context.Background(), func(context.Context) error { return marker })
		if !errors.Is(err, marker) {
			t.Fatalf("expected marker error, got %v", err)
		}
	})

	t.Run("ping_ok", func(t *testing.T) {
		st, _, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		if err := st.Pinger.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}
