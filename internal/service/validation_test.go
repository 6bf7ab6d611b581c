package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		in   repository.Page
		want repository.Page
	}{
		{repository.Page{}, repository.Page{Limit: defaultPageLimit}},
		{repository.Page{Limit: -3, Offset: -1}, repository.Page{Limit: defaultPageLimit}},
		{repository.Page{Limit: 10, Offset: 20}, repository.Page{Limit: 10, Offset: 20}},
		{repository.Page{Limit: 10_000}, repository.Page{Limit: maxPageLimit}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizePage(tc.in))
	}
}

func TestValidateID(t *testing.T) {
	const canon = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"
	for _, in := range []string{
		canon,
		" " + canon + " ",
		"3F2504E0-4F89-11D3-9A0C-0305E82C3301",
		"{3f2504e0-4f89-11d3-9a0c-0305e82c3301}",
		"urn:uuid:3f2504e0-4f89-11d3-9a0c-0305e82c3301",
		"3f2504e04f8911d39a0c0305e82c3301",
	} {
		got, err := validateID("id", in)
		assert.NoError(t, err, in)
		assert.Equal(t, canon, got, in)
	}

	for _, in := range []string{"", "17"} {
		got, err := validateID("id", in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
		assert.Empty(t, got)
	}
}

func TestValidateFilter(t *testing.T) {
	wc := 0
	cases := []struct {
		name      string
		filter    analytics.WrestlerFilter
		wantField string
	}{
		{"ok", analytics.WrestlerFilter{SortBy: analytics.SortByTotalWins, SortOrder: analytics.SortDesc}, ""},
		{"empty_ok", analytics.WrestlerFilter{}, ""},
		{"bad_sort", analytics.WrestlerFilter{SortBy: "age"}, "sort_by"},
		{"bad_order", analytics.WrestlerFilter{SortOrder: "up"}, "sort_order"},
		{"negative_min", analytics.WrestlerFilter{MinMatches: -2}, "min_matches"},
		{"zero_weight", analytics.WrestlerFilter{WeightClass: &wc}, "weight_class"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFilter(tc.filter)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
			fields := FieldErrors(err)
			if assert.Len(t, fields, 1) {
				assert.Equal(t, tc.wantField, fields[0].Field)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Nil(t, FieldErrors(errors.New("plain")))
	assert.Nil(t, NewInvalidInputError(nil))

	err := NewInvalidInputError([]FieldError{{Field: "id", Message: "bad"}})
	assert.Equal(t, []FieldError{{Field: "id", Message: "bad"}}, FieldErrors(err))
}
