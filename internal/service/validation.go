package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

var validate = validator.New()

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// validateID parses any accepted UUID spelling and returns the lowercase hyphenated form
// the store emits, so ids compare equal to the ones on loaded rows.
func validateID(field, id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", NewInvalidInputError([]FieldError{{Field: field, Message: "must be a valid UUID"}})
	}
	return u.String(), nil
}

type filterRules struct {
	SortBy      string `validate:"omitempty,oneof=name win_percentage total_wins total_matches"`
	SortOrder   string `validate:"omitempty,oneof=asc desc"`
	MinMatches  int    `validate:"gte=0"`
	WeightClass *int   `validate:"omitempty,gt=0"`
}

var filterFields = map[string]string{
	"SortBy":      "sort_by",
	"SortOrder":   "sort_order",
	"MinMatches":  "min_matches",
	"WeightClass": "weight_class",
}

func validateFilter(f analytics.WrestlerFilter) error {
	err := validate.Struct(filterRules{
		SortBy:      f.SortBy,
		SortOrder:   f.SortOrder,
		MinMatches:  f.MinMatches,
		WeightClass: f.WeightClass,
	})
	if err == nil {
		return nil
	}
	var ferrs []FieldError
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			ferrs = append(ferrs, FieldError{Field: filterFields[fe.Field()], Message: ruleMessage(fe)})
		}
	}
	if len(ferrs) == 0 {
		ferrs = []FieldError{{Field: "query", Message: err.Error()}}
	}
	return NewInvalidInputError(ferrs)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be >= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	default:
		return "is invalid"
	}
}
