package analytics

import (
	"cmp"
	"slices"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

// DefaultTopWrestlerMinMatches is the experience floor for a team's top wrestler.
const DefaultTopWrestlerMinMatches = 3

// RollupTeams groups wrestler records by resolved team name. Totals are straight sums and
// the team percentage is recomputed from them. Output is ordered by win percentage, then
// total wins, both descending; ties keep first-seen team order.
func RollupTeams(stats []model.WrestlerStats, minMatches int) []model.TeamStats {
	var order []string
	members := make(map[string][]model.WrestlerStats)
	for _, s := range stats {
		team := ResolveTeamName(s.Name)
		if _, ok := members[team]; !ok {
			order = append(order, team)
		}
		members[team] = append(members[team], s)
	}

	out := make([]model.TeamStats, 0, len(order))
	for _, team := range order {
		group := members[team]
		ts := model.TeamStats{TeamName: team, WrestlerCount: len(group)}
		for _, w := range group {
			ts.TotalWins += w.Wins
			ts.TotalLosses += w.Losses
			ts.Pins += w.Pins
		}
		ts.TotalMatches = ts.TotalWins + ts.TotalLosses
		ts.WinPercentage = winPercentage(ts.TotalWins, ts.TotalMatches)
		ts.TopWrestler = topWrestler(group, minMatches)
		out = append(out, ts)
	}

	slices.SortStableFunc(out, func(a, b model.TeamStats) int {
		if c := cmp.Compare(b.WinPercentage, a.WinPercentage); c != 0 {
			return c
		}
		return cmp.Compare(b.TotalWins, a.TotalWins)
	})
	return out
}

// topWrestler picks the best percentage among members with at least minMatches bouts,
// falling back to the first member.
func topWrestler(group []model.WrestlerStats, minMatches int) string {
	best := -1
	for i, w := range group {
		if w.TotalMatches < minMatches {
			continue
		}
		if best < 0 || w.WinPercentage > group[best].WinPercentage {
			best = i
		}
	}
	switch {
	case best >= 0:
		return group[best].Name
	case len(group) > 0:
		return group[0].Name
	default:
		return "N/A"
	}
}

// CompareTeams reduces team rollups to the comparison chart shape, keeping their order.
func CompareTeams(teams []model.TeamStats) []model.TeamComparison {
	out := make([]model.TeamComparison, len(teams))
	for i, t := range teams {
		out[i] = model.TeamComparison{
			TeamName:      t.TeamName,
			Wins:          t.TotalWins,
			Matches:       t.TotalMatches,
			WinPercentage: t.WinPercentage,
		}
	}
	return out
}

// UniqueTeams lists the distinct resolved team names, sorted.
func UniqueTeams(wrestlers []model.Wrestler) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, w := range wrestlers {
		team := ResolveTeamName(w.Name)
		if _, ok := seen[team]; ok {
			continue
		}
		seen[team] = struct{}{}
		out = append(out, team)
	}
	slices.Sort(out)
	return out
}
