package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
	carlID  = "33333333-3333-3333-3333-333333333333"
	openID  = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	dualsID = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	ghostID = "99999999-9999-9999-9999-999999999999"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// fakeStore is an in-memory store. Setting an error field makes the matching read fail.
type fakeStore struct {
	wrestlers   []model.Wrestler
	tournaments []model.Tournament
	matches     []model.Match

	wrestlersErr   error
	tournamentsErr error
	matchesErr     error
	txErr          error

	mu      sync.Mutex
	txCalls int
}

func (f *fakeStore) Store() repository.Store {
	return repository.Store{
		Wrestlers:   fakeWrestlers{f},
		Tournaments: fakeTournaments{f},
		Matches:     fakeMatches{f},
		Tx:          fakeTx{f},
		Pinger:      fakeTx{f},
	}
}

// seedStore builds three wrestlers across two tournaments:
//
//	Alice (Eagles) beats Bob by pin and loses to Carl by decision at the Open,
//	Bob - Hawks beats Carl by tech fall at the Duals,
//	Alice and Bob wrestle to a no-contest without an event.
func seedStore() *fakeStore {
	return &fakeStore{
		wrestlers: []model.Wrestler{
			{ID: aliceID, Name: "Alice (Eagles)", WeightClass: ptr(125), CreatedAt: t0},
			{ID: bobID, Name: "Bob - Hawks", WeightClass: ptr(133), CreatedAt: t0},
			{ID: carlID, Name: "Carl", CreatedAt: t0},
		},
		tournaments: []model.Tournament{
			{ID: openID, Name: "Spring Open", Date: ptr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), CreatedAt: t0},
			{ID: dualsID, Name: "Winter Duals", Date: ptr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)), CreatedAt: t0},
		},
		matches: []model.Match{
			{ID: "m1", TournamentID: ptr(openID), Wrestler1ID: aliceID, Wrestler2ID: bobID, WinnerID: ptr(aliceID),
				MatchType: model.MatchTypePin, Round: ptr("Final"), CreatedAt: t0},
			{ID: "m2", TournamentID: ptr(openID), Wrestler1ID: aliceID, Wrestler2ID: carlID, WinnerID: ptr(carlID),
				MatchType: model.MatchTypeDecision, Round: ptr("Semi"), CreatedAt: t0.Add(time.Minute)},
			{ID: "m3", TournamentID: ptr(dualsID), Wrestler1ID: bobID, Wrestler2ID: carlID, WinnerID: ptr(bobID),
				MatchType: model.MatchTypeTechFall, CreatedAt: t0.Add(2 * time.Minute)},
			{ID: "m4", Wrestler1ID: aliceID, Wrestler2ID: bobID, MatchType: model.MatchTypeForfeit,
				CreatedAt: t0.Add(3 * time.Minute)},
		},
	}
}

func (f *fakeStore) wrestlerName(id string) string {
	for _, w := range f.wrestlers {
		if w.ID == id {
			return w.Name
		}
	}
	return ""
}

// joined fills the name/date fields the postgres joins would.
func (f *fakeStore) joined(m model.Match) model.Match {
	m.Wrestler1Name = f.wrestlerName(m.Wrestler1ID)
	m.Wrestler2Name = f.wrestlerName(m.Wrestler2ID)
	if m.WinnerID != nil {
		m.WinnerName = f.wrestlerName(*m.WinnerID)
	}
	if m.TournamentID != nil {
		for _, t := range f.tournaments {
			if t.ID == *m.TournamentID {
				m.TournamentName, m.TournamentDate = t.Name, t.Date
			}
		}
	}
	return m
}

func (f *fakeStore) selectMatches(keep func(model.Match) bool) ([]model.Match, error) {
	if f.matchesErr != nil {
		return nil, f.matchesErr
	}
	out := make([]model.Match, 0)
	for _, m := range f.matches {
		if keep(m) {
			out = append(out, f.joined(m))
		}
	}
	return out, nil
}

type fakeWrestlers struct{ f *fakeStore }

func (r fakeWrestlers) GetByID(_ context.Context, id string) (model.Wrestler, error) {
	if r.f.wrestlersErr != nil {
		return model.Wrestler{}, r.f.wrestlersErr
	}
	for _, w := range r.f.wrestlers {
		if w.ID == id {
			return w, nil
		}
	}
	return model.Wrestler{}, repository.ErrNotFound
}

func (r fakeWrestlers) List(context.Context) ([]model.Wrestler, error) {
	if r.f.wrestlersErr != nil {
		return nil, r.f.wrestlersErr
	}
	return append([]model.Wrestler(nil), r.f.wrestlers...), nil
}

func (r fakeWrestlers) ListWeightClasses(context.Context) ([]int, error) {
	if r.f.wrestlersErr != nil {
		return nil, r.f.wrestlersErr
	}
	return []int{125, 133}, nil
}

type fakeTournaments struct{ f *fakeStore }

func (r fakeTournaments) GetByID(_ context.Context, id string) (model.Tournament, error) {
	if r.f.tournamentsErr != nil {
		return model.Tournament{}, r.f.tournamentsErr
	}
	for _, t := range r.f.tournaments {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Tournament{}, repository.ErrNotFound
}

func (r fakeTournaments) List(context.Context) ([]model.Tournament, error) {
	if r.f.tournamentsErr != nil {
		return nil, r.f.tournamentsErr
	}
	return append([]model.Tournament(nil), r.f.tournaments...), nil
}

func (r fakeTournaments) ListRefs(context.Context) ([]model.TournamentRef, error) {
	if r.f.tournamentsErr != nil {
		return nil, r.f.tournamentsErr
	}
	out := make([]model.TournamentRef, 0, len(r.f.tournaments))
	for _, t := range r.f.tournaments {
		out = append(out, model.TournamentRef{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

type fakeMatches struct{ f *fakeStore }

func (r fakeMatches) ListByWrestler(_ context.Context, id string) ([]model.Match, error) {
	return r.f.selectMatches(func(m model.Match) bool { return m.Involves(id) })
}

func (r fakeMatches) ListByTournament(_ context.Context, id string) ([]model.Match, error) {
	return r.f.selectMatches(func(m model.Match) bool { return m.TournamentID != nil && *m.TournamentID == id })
}

func (r fakeMatches) ListWithTournamentDates(_ context.Context, id *string) ([]model.Match, error) {
	return r.f.selectMatches(func(m model.Match) bool { return id == nil || m.Involves(*id) })
}

func (r fakeMatches) ListAll(context.Context) ([]model.Match, error) {
	return r.f.selectMatches(func(model.Match) bool { return true })
}

func (r fakeMatches) ListDecided(_ context.Context, id *string) ([]model.Match, error) {
	return r.f.selectMatches(func(m model.Match) bool {
		return m.HasWinner() && (id == nil || m.WonBy(*id))
	})
}

type fakeTx struct{ f *fakeStore }

func (t fakeTx) WithinReadTx(ctx context.Context, fn repository.TxFunc) error {
	t.f.mu.Lock()
	t.f.txCalls++
	t.f.mu.Unlock()
	if t.f.txErr != nil {
		return t.f.txErr
	}
	return fn(ctx)
}

func (t fakeTx) Ping(context.Context) error { return t.f.txErr }

var (
	_ repository.WrestlerRepository   = fakeWrestlers{}
	_ repository.TournamentRepository = fakeTournaments{}
	_ repository.MatchRepository      = fakeMatches{}
	_ repository.TxManager            = fakeTx{}
)
