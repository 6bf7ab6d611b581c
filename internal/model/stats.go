package model

// WrestlerStats is a wrestler's win/loss record. Match-type counts only cover matches the wrestler won.
type WrestlerStats struct {
	WrestlerID     string `json:"wrestler_id"`
	Name           string `json:"name"`
	WeightClass    *int   `json:"weight_class"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	TotalMatches   int    `json:"total_matches"`
	WinPercentage  int    `json:"win_percentage"`
	Pins           int    `json:"pins"`
	Decisions      int    `json:"decisions"`
	TechFalls      int    `json:"tech_falls"`
	MajorDecisions int    `json:"major_decisions"`
}

// TeamStats rolls up the members of one resolved team.
type TeamStats struct {
	TeamName      string `json:"team_name"`
	WrestlerCount int    `json:"wrestler_count"`
	TotalWins     int    `json:"total_wins"`
	TotalLosses   int    `json:"total_losses"`
	TotalMatches  int    `json:"total_matches"`
	WinPercentage int    `json:"win_percentage"`
	Pins          int    `json:"pins"`
	TopWrestler   string `json:"top_wrestler"`
}

// TeamComparison is the reduced team shape used by comparison charts.
type TeamComparison struct {
	TeamName      string `json:"team_name"`
	Wins          int    `json:"wins"`
	Matches       int    `json:"matches"`
	WinPercentage int    `json:"win_percentage"`
}

// MatchTypeCounts counts the four named match-type buckets.
type MatchTypeCounts struct {
	Pins           int `json:"pins"`
	Decisions      int `json:"decisions"`
	TechFalls      int `json:"tech_falls"`
	MajorDecisions int `json:"major_decisions"`
}

// TournamentStats summarizes one tournament. MatchTypes counts every match, not only wins.
type TournamentStats struct {
	TournamentID       string          `json:"tournament_id"`
	Name               string          `json:"name"`
	Date               *string         `json:"date"`
	TotalMatches       int             `json:"total_matches"`
	TotalWins          int             `json:"total_wins"`
	ParticipatingTeams int             `json:"participating_teams"`
	MatchTypes         MatchTypeCounts `json:"match_types"`
}

// TournamentMatch is a match denormalized for display.
type TournamentMatch struct {
	ID             string    `json:"id"`
	Wrestler1Name  string    `json:"wrestler1_name"`
	Wrestler2Name  string    `json:"wrestler2_name"`
	WinnerName     *string   `json:"winner_name"`
	Wrestler1Score int       `json:"wrestler1_score"`
	Wrestler2Score int       `json:"wrestler2_score"`
	MatchType      MatchType `json:"match_type"`
	Round          string    `json:"round"`
}

// TournamentTeamPerformance is one team's record within a single tournament.
// Matches counts every bout a member wrestled, so an intra-team bout counts twice.
type TournamentTeamPerformance struct {
	Team    string `json:"team"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
	WinRate int    `json:"win_rate"`
}

// TournamentDetails is TournamentStats plus the chronologically ordered match list.
type TournamentDetails struct {
	TournamentStats
	Rounds          []string                    `json:"rounds"`
	TeamPerformance []TournamentTeamPerformance `json:"team_performance"`
	Matches         []TournamentMatch           `json:"matches"`
}

// PerformanceDataPoint is one date bucket of the performance series.
type PerformanceDataPoint struct {
	Date    string `json:"date"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
	Pins    int    `json:"pins"`
}

// WinTypeData is one labelled slice of the win-type chart.
type WinTypeData struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DashboardOverview bundles the landing page numbers.
type DashboardOverview struct {
	WrestlerCount   int                    `json:"wrestler_count"`
	TeamCount       int                    `json:"team_count"`
	TournamentCount int                    `json:"tournament_count"`
	Performance     []PerformanceDataPoint `json:"performance"`
	WinTypes        []WinTypeData          `json:"win_types"`
}
