package analytics

import (
	"slices"
	"strings"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

const dateLayout = "2006-01-02"

// BucketKey is the date a match is charted under: the tournament date when known,
// otherwise the UTC date the match row was created.
func BucketKey(m model.Match) string {
	if m.TournamentDate != nil {
		return m.TournamentDate.Format(dateLayout)
	}
	return m.CreatedAt.UTC().Format(dateLayout)
}

// BucketPerformance groups matches into per-date points ordered by date ascending.
// With a wrestlerID only that wrestler's wins (and pin wins) are counted; with an empty
// wrestlerID every decided match is a win and every pin is a pin. Dates without matches
// are not emitted.
func BucketPerformance(matches []model.Match, wrestlerID string) []model.PerformanceDataPoint {
	index := make(map[string]int)
	points := make([]model.PerformanceDataPoint, 0)
	for _, m := range matches {
		key := BucketKey(m)
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, model.PerformanceDataPoint{Date: key})
		}
		p := &points[i]
		p.Matches++

		if wrestlerID != "" {
			if m.WonBy(wrestlerID) {
				p.Wins++
				if m.MatchType == model.MatchTypePin {
					p.Pins++
				}
			}
			continue
		}
		if m.HasWinner() {
			p.Wins++
		}
		if m.MatchType == model.MatchTypePin {
			p.Pins++
		}
	}
	// ISO dates order lexically.
	slices.SortStableFunc(points, func(a, b model.PerformanceDataPoint) int {
		return strings.Compare(a.Date, b.Date)
	})
	return points
}
