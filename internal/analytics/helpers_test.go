package analytics_test

import (
	"time"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

var baseTime = time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func bout(id, w1, w2 string, winner *string, mt model.MatchType) model.Match {
	return model.Match{
		ID:          id,
		Wrestler1ID: w1,
		Wrestler2ID: w2,
		WinnerID:    winner,
		MatchType:   mt,
		CreatedAt:   baseTime,
	}
}
