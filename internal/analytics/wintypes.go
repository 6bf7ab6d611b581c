package analytics

import "github.com/maxviazov/wrestling-analytics-service/internal/model"

// WinTypes counts how decided matches were won, labelled for charts. With a wrestlerID only
// that wrestler's wins count. No wins yields an empty slice rather than four zeros.
func WinTypes(matches []model.Match, wrestlerID string) []model.WinTypeData {
	var c model.MatchTypeCounts
	won := 0
	for _, m := range matches {
		if !m.HasWinner() || (wrestlerID != "" && !m.WonBy(wrestlerID)) {
			continue
		}
		won++
		switch m.MatchType {
		case model.MatchTypePin:
			c.Pins++
		case model.MatchTypeTechFall:
			c.TechFalls++
		case model.MatchTypeMajorDecision:
			c.MajorDecisions++
		case model.MatchTypeDecision:
			c.Decisions++
		}
	}
	if won == 0 {
		return []model.WinTypeData{}
	}
	return []model.WinTypeData{
		{Type: "Pin", Count: c.Pins},
		{Type: "Tech Fall", Count: c.TechFalls},
		{Type: "Major", Count: c.MajorDecisions},
		{Type: "Decision", Count: c.Decisions},
	}
}
