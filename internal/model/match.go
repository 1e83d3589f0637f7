package model

// Match lifecycle states.
const (
	MatchScheduled = "scheduled"
	MatchLive      = "live"
	MatchFinished  = "finished"
	MatchPostponed = "postponed"
	MatchCancelled = "cancelled"
)

// Match is a sports fixture that venues can put on their broadcast schedule.
// MatchDate is an RFC-3339 UTC timestamp; listings order by plain string
// comparison, which for this format equals chronological order. Scores are
// nil until the match has been played.
type Match struct {
	ID         string `json:"id"`
	SportID    string `json:"sport_id"`
	LeagueID   string `json:"league_id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	MatchDate  string `json:"match_date"`
	Status     string `json:"status"`
	HomeScore  *int   `json:"home_score"`
	AwayScore  *int   `json:"away_score"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
