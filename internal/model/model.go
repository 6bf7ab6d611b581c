// Package model contains domain entities and derived read models used across layers.
// Entities mirror the store rows; derived types are computed on demand and never persisted.
package model

import "time"

// MatchType is the manner in which a bout was decided.
type MatchType string

const (
	MatchTypeDecision         MatchType = "decision"
	MatchTypeMajorDecision    MatchType = "major_decision"
	MatchTypeTechFall         MatchType = "tech_fall"
	MatchTypePin              MatchType = "pin"
	MatchTypeForfeit          MatchType = "forfeit"
	MatchTypeDisqualification MatchType = "disqualification"
)

// Valid reports whether t is one of the known match types.
func (t MatchType) Valid() bool {
	switch t {
	case MatchTypeDecision, MatchTypeMajorDecision, MatchTypeTechFall, MatchTypePin,
		MatchTypeForfeit, MatchTypeDisqualification:
		return true
	default:
		return false
	}
}

// Wrestler is an athlete. The display name may embed team information.
type Wrestler struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	WeightClass *int      `json:"weight_class"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tournament groups matches held at one event.
type Tournament struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Date      *time.Time `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
}

// TournamentRef is the id/name pair used by filter pickers.
type TournamentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is a single bout between two wrestlers. A nil WinnerID marks a no-contest.
// Name fields and TournamentDate are populated by joins and may be empty.
type Match struct {
	ID             string     `json:"id"`
	TournamentID   *string    `json:"tournament_id"`
	Wrestler1ID    string     `json:"wrestler1_id"`
	Wrestler2ID    string     `json:"wrestler2_id"`
	WinnerID       *string    `json:"winner_id"`
	Wrestler1Score int        `json:"wrestler1_score"`
	Wrestler2Score int        `json:"wrestler2_score"`
	MatchType      MatchType  `json:"match_type"`
	Round          *string    `json:"round"`
	CreatedAt      time.Time  `json:"created_at"`
	TournamentName string     `json:"tournament_name,omitempty"`
	TournamentDate *time.Time `json:"tournament_date,omitempty"`
	Wrestler1Name  string     `json:"wrestler1_name,omitempty"`
	Wrestler2Name  string     `json:"wrestler2_name,omitempty"`
	WinnerName     string     `json:"winner_name,omitempty"`
}

// HasWinner reports whether the match was decided.
func (m Match) HasWinner() bool { return m.WinnerID != nil && *m.WinnerID != "" }

// WonBy reports whether the given wrestler won the match.
func (m Match) WonBy(wrestlerID string) bool { return m.HasWinner() && *m.WinnerID == wrestlerID }

// Involves reports whether the given wrestler wrestled in the match.
func (m Match) Involves(wrestlerID string) bool {
	return m.Wrestler1ID == wrestlerID || m.Wrestler2ID == wrestlerID
}
