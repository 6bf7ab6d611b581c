package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

func listing() []model.WrestlerStats {
	a := record("Ann Lee (Eagles)", 3, 1, 0)
	a.WeightClass = ptr(120)
	b := record("bob Ray - Tigers", 1, 1, 0)
	b.WeightClass = ptr(132)
	c := record("Cara Moss (Eagles)", 5, 0, 0)
	c.WeightClass = ptr(120)
	d := record("Dee Fox", 0, 0, 0)
	return []model.WrestlerStats{a, b, c, d}
}

func names(stats []model.WrestlerStats) []string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Name
	}
	return out
}

func TestFilterWrestlers(t *testing.T) {
	cases := []struct {
		name   string
		filter analytics.WrestlerFilter
		want   []string
	}{
		{"default win percentage desc", analytics.WrestlerFilter{},
			[]string{"Cara Moss (Eagles)", "Ann Lee (Eagles)", "bob Ray - Tigers", "Dee Fox"}},
		{"search case insensitive", analytics.WrestlerFilter{Search: "RAY"},
			[]string{"bob Ray - Tigers"}},
		{"team", analytics.WrestlerFilter{Team: "Eagles"},
			[]string{"Cara Moss (Eagles)", "Ann Lee (Eagles)"}},
		{"team all", analytics.WrestlerFilter{Team: "all", SortBy: analytics.SortByName, SortOrder: analytics.SortAsc},
			[]string{"Ann Lee (Eagles)", "bob Ray - Tigers", "Cara Moss (Eagles)", "Dee Fox"}},
		{"weight class", analytics.WrestlerFilter{WeightClass: ptr(132)},
			[]string{"bob Ray - Tigers"}},
		{"min matches", analytics.WrestlerFilter{MinMatches: 3, SortBy: analytics.SortByTotalMatches},
			[]string{"Cara Moss (Eagles)", "Ann Lee (Eagles)"}},
		{"name desc", analytics.WrestlerFilter{SortBy: analytics.SortByName, SortOrder: analytics.SortDesc},
			[]string{"Dee Fox", "Cara Moss (Eagles)", "bob Ray - Tigers", "Ann Lee (Eagles)"}},
		{"wins asc", analytics.WrestlerFilter{SortBy: analytics.SortByTotalWins, SortOrder: analytics.SortAsc},
			[]string{"Dee Fox", "bob Ray - Tigers", "Ann Lee (Eagles)", "Cara Moss (Eagles)"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(analytics.FilterWrestlers(listing(), tc.filter)))
		})
	}
}

func TestFilterWrestlers_DoesNotMutateInput(t *testing.T) {
	in := listing()
	_ = analytics.FilterWrestlers(in, analytics.WrestlerFilter{SortBy: analytics.SortByName})
	assert.Equal(t, names(listing()), names(in))
}
