package analytics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

// Sort keys accepted by FilterWrestlers.
const (
	SortByName          = "name"
	SortByWinPercentage = "win_percentage"
	SortByTotalWins     = "total_wins"
	SortByTotalMatches  = "total_matches"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// WrestlerFilter narrows and orders a wrestler listing. Zero values disable each criterion;
// an empty SortBy means win percentage and an empty SortOrder means descending.
type WrestlerFilter struct {
	Search      string
	Team        string
	WeightClass *int
	MinMatches  int
	SortBy      string
	SortOrder   string
}

// FilterWrestlers returns a new slice; the input is left untouched.
func FilterWrestlers(stats []model.WrestlerStats, f WrestlerFilter) []model.WrestlerStats {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.WrestlerStats, 0, len(stats))
	for _, s := range stats {
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) {
			continue
		}
		if f.Team != "" && f.Team != "all" && ResolveTeamName(s.Name) != f.Team {
			continue
		}
		if f.WeightClass != nil && (s.WeightClass == nil || *s.WeightClass != *f.WeightClass) {
			continue
		}
		if s.TotalMatches < f.MinMatches {
			continue
		}
		out = append(out, s)
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortByWinPercentage
	}
	desc := f.SortOrder != SortAsc

	slices.SortStableFunc(out, func(a, b model.WrestlerStats) int {
		var c int
		switch sortBy {
		case SortByName:
			c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByTotalWins:
			c = cmp.Compare(a.Wins, b.Wins)
		case SortByTotalMatches:
			c = cmp.Compare(a.TotalMatches, b.TotalMatches)
		default:
			c = cmp.Compare(a.WinPercentage, b.WinPercentage)
		}
		if desc {
			return -c
		}
		return c
	})
	return out
}
