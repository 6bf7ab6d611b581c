package analytics

import (
	"fmt"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

// NoContestPolicy decides how a match without a winner counts for its participants.
type NoContestPolicy string

const (
	// NoContestAsLoss counts a no-contest as a loss for both wrestlers.
	// This reproduces the historical dashboard numbers and is the default.
	NoContestAsLoss NoContestPolicy = "loss"
	// NoContestExcluded leaves no-contests out of wins, losses and totals.
	NoContestExcluded NoContestPolicy = "exclude"
)

// ParseNoContestPolicy accepts "loss", "exclude" or empty (loss).
func ParseNoContestPolicy(s string) (NoContestPolicy, error) {
	switch NoContestPolicy(s) {
	case "", NoContestAsLoss:
		return NoContestAsLoss, nil
	case NoContestExcluded:
		return NoContestExcluded, nil
	default:
		return "", fmt.Errorf("unknown no-contest policy %q", s)
	}
}

// ReduceWrestlerStats folds a wrestler's matches into a single record.
// The caller passes the wrestler's own match list; any match not won by the wrestler
// counts as a loss, with no-contests handled per policy.
func ReduceWrestlerStats(w model.Wrestler, matches []model.Match, policy NoContestPolicy) model.WrestlerStats {
	out := model.WrestlerStats{
		WrestlerID:  w.ID,
		Name:        w.Name,
		WeightClass: w.WeightClass,
	}
	for _, m := range matches {
		if m.WonBy(w.ID) {
			out.Wins++
			switch m.MatchType {
			case model.MatchTypePin:
				out.Pins++
			case model.MatchTypeDecision:
				out.Decisions++
			case model.MatchTypeTechFall:
				out.TechFalls++
			case model.MatchTypeMajorDecision:
				out.MajorDecisions++
			}
			continue
		}
		if !m.HasWinner() && policy == NoContestExcluded {
			continue
		}
		out.Losses++
	}
	out.TotalMatches = out.Wins + out.Losses
	out.WinPercentage = winPercentage(out.Wins, out.TotalMatches)
	return out
}

// GroupMatchesByWrestler indexes matches under both participants so one bulk read
// can feed ReduceWrestlerStats for every wrestler.
func GroupMatchesByWrestler(matches []model.Match) map[string][]model.Match {
	out := make(map[string][]model.Match)
	for _, m := range matches {
		out[m.Wrestler1ID] = append(out[m.Wrestler1ID], m)
		if m.Wrestler2ID != m.Wrestler1ID {
			out[m.Wrestler2ID] = append(out[m.Wrestler2ID], m)
		}
	}
	return out
}

// ReduceAll applies ReduceWrestlerStats to every wrestler, preserving input order.
func ReduceAll(wrestlers []model.Wrestler, matches []model.Match, policy NoContestPolicy) []model.WrestlerStats {
	byWrestler := GroupMatchesByWrestler(matches)
	out := make([]model.WrestlerStats, len(wrestlers))
	for i, w := range wrestlers {
		out[i] = ReduceWrestlerStats(w, byWrestler[w.ID], policy)
	}
	return out
}
