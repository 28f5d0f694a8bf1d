package model

// Sport identifies which league a request is for.
type Sport string

const (
	SportNFL Sport = "nfl"
	SportCFB Sport = "college-football"
)

// Valid reports whether s is one of the supported sports.
func (s Sport) Valid() bool {
	return s == SportNFL || s == SportCFB
}

// GameStatus is the closed status vocabulary every provider payload is
// normalized into.
type GameStatus string

const (
	StatusPre      GameStatus = "pre"
	StatusIn       GameStatus = "in"
	StatusHalftime GameStatus = "halftime"
	StatusPost     GameStatus = "post"
	StatusFinal    GameStatus = "final"
	StatusDelayed  GameStatus = "delayed"
)

// TeamSide marks which side of the game a record belongs to.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

// Team is the scoreboard-level team record.
type Team struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Nickname     *string `json:"nickname"`
	Abbreviation *string `json:"abbreviation"`
	Color        *string `json:"color"`
	Logo         *string `json:"logo"`
	Record       *string `json:"record"`
	Rank         *int    `json:"rank"`
}

// Competitor pairs a team with its side and score for scoreboard rows.
type Competitor struct {
	Team     Team     `json:"team"`
	HomeAway TeamSide `json:"homeAway"`
	Score    *int     `json:"score"`
}

// GameSummary is one scoreboard row, shared across both leagues.
type GameSummary struct {
	ID          string       `json:"id"`
	Sport       Sport        `json:"sport"`
	StartTime   string       `json:"startTime"`
	Status      string       `json:"status"`
	Venue       *string      `json:"venue"`
	Competitors []Competitor `json:"competitors"`
}

// TeamHeader is the per-team block inside a game header.
type TeamHeader struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	FullName     string  `json:"full_name"`
	Abbreviation string  `json:"abbreviation"`
	Record       *string `json:"record"`
	Score        int     `json:"score"`
}

// Header is the top-of-game summary for the live game view.
type Header struct {
	GameID         string     `json:"game_id"`
	League         string     `json:"league"`
	Season         int        `json:"season"`
	Week           *int       `json:"week"`
	Status         GameStatus `json:"status"`
	KickoffTimeUTC string     `json:"kickoff_time_utc"`
	HomeTeam       TeamHeader `json:"home_team"`
	AwayTeam       TeamHeader `json:"away_team"`
	Quarter        *int       `json:"quarter"`
	Clock          *string    `json:"clock"`
	Possession     *TeamSide  `json:"possession"`
	Down           *int       `json:"down"`
	Distance       *int       `json:"distance"`
	YardLine       *int       `json:"yard_line"`
	RedZone        bool       `json:"red_zone"`
	HomeTimeouts   *int       `json:"home_timeouts"`
	AwayTimeouts   *int       `json:"away_timeouts"`
	LastPlayShort  *string    `json:"last_play_short"`
	LastUpdatedUTC string     `json:"last_updated_utc"`
}

// DriveResult is the normalized outcome of a completed drive.
type DriveResult string

const (
	DriveTD       DriveResult = "TD"
	DriveFG       DriveResult = "FG"
	DrivePunt     DriveResult = "Punt"
	DriveDowns    DriveResult = "Downs"
	DriveTO       DriveResult = "TO"
	DriveEndHalf  DriveResult = "EndHalf"
	DriveMissedFG DriveResult = "MissedFG"
	DriveOther    DriveResult = "Other"
)

// DriveSummary describes one completed drive.
type DriveSummary struct {
	ID               string      `json:"id"`
	Team             TeamSide    `json:"team"`
	Quarter          int         `json:"quarter"`
	StartClock       string      `json:"start_clock"`
	EndClock         string      `json:"end_clock"`
	StartYardLine    *int        `json:"start_yard_line"`
	EndYardLine      *int        `json:"end_yard_line"`
	Plays            int         `json:"plays"`
	Yards            int         `json:"yards"`
	TimeOfPossession string      `json:"time_of_possession"`
	Result           DriveResult `json:"result"`
}

// PlayResult classifies one play inside the current drive.
type PlayResult string

const (
	PlayNormal  PlayResult = "normal"
	PlayTD      PlayResult = "TD"
	PlayFG      PlayResult = "FG"
	PlayTO      PlayResult = "TO"
	PlayPenalty PlayResult = "Penalty"
	PlaySafety  PlayResult = "Safety"
	PlayOther   PlayResult = "Other"
)

// Play is a single play within the current drive.
type Play struct {
	PlayID      string     `json:"play_id"`
	Quarter     int        `json:"quarter"`
	Clock       string     `json:"clock"`
	Down        *int       `json:"down"`
	Distance    *int       `json:"distance"`
	YardLine    *int       `json:"yard_line"`
	Description string     `json:"description"`
	Gained      *int       `json:"gained"`
	Result      PlayResult `json:"result"`
}

// CurrentDrive is the in-progress drive, if any.
type CurrentDrive struct {
	ID    *string   `json:"id"`
	Team  *TeamSide `json:"team"`
	Plays []Play    `json:"plays"`
}

// Drives groups completed and current drive information.
type Drives struct {
	CurrentDriveID *string        `json:"current_drive_id"`
	Summary        []DriveSummary `json:"summary"`
	Current        *CurrentDrive  `json:"current"`
}

// QuarterScore holds per-quarter point totals for both sides.
type QuarterScore struct {
	Quarter    int `json:"quarter"`
	HomePoints int `json:"home_points"`
	AwayPoints int `json:"away_points"`
}

// ScoringType classifies a scoring play.
type ScoringType string

const (
	ScoreTD     ScoringType = "TD"
	ScoreFG     ScoringType = "FG"
	ScoreSafety ScoringType = "Safety"
	ScoreXP     ScoringType = "XP"
	Score2PT    ScoringType = "2PT"
	ScoreOther  ScoringType = "Other"
)

// ScoringEvent is one scoring play in source order.
type ScoringEvent struct {
	ID            string      `json:"id"`
	Quarter       int         `json:"quarter"`
	Clock         string      `json:"clock"`
	Team          TeamSide    `json:"team"`
	Type          ScoringType `json:"type"`
	Description   string      `json:"description"`
	Yards         *int        `json:"yards"`
	PlayerPrimary *string     `json:"player_primary"`
}

// TouchdownScorer tallies touchdowns per (player, team).
type TouchdownScorer struct {
	Player string   `json:"player"`
	Team   TeamSide `json:"team"`
	Count  int      `json:"count"`
}

// Scoring groups quarter totals, scoring plays, and TD tallies.
type Scoring struct {
	SummaryByQuarter []QuarterScore    `json:"summary_by_quarter"`
	Plays            []ScoringEvent    `json:"plays"`
	TouchdownScorers []TouchdownScorer `json:"touchdown_scorers"`
}

// TeamGameStats holds team-level aggregate statistics. Every field is
// independently optional; a missing upstream stat leaves its field nil.
type TeamGameStats struct {
	TotalYards        *int     `json:"total_yards"`
	Plays             *int     `json:"plays"`
	YardsPerPlay      *float64 `json:"yards_per_play"`
	PassingYards      *int     `json:"passing_yards"`
	RushingYards      *int     `json:"rushing_yards"`
	Turnovers         *int     `json:"turnovers"`
	Penalties         *int     `json:"penalties"`
	PenaltyYards      *int     `json:"penalty_yards"`
	ThirdDownMade     *int     `json:"third_down_made"`
	ThirdDownAttempts *int     `json:"third_down_attempts"`
	RedZoneTrips      *int     `json:"red_zone_trips"`
	RedZoneTDs        *int     `json:"red_zone_tds"`
	TimeOfPossession  *string  `json:"time_of_possession"`
}

// TeamStatsPair is team stats keyed by side.
type TeamStatsPair struct {
	Home TeamGameStats `json:"home"`
	Away TeamGameStats `json:"away"`
}

// PassingStat is a complete passing line for one player.
type PassingStat struct {
	Player        string   `json:"player"`
	Team          TeamSide `json:"team"`
	Completions   int      `json:"completions"`
	Attempts      int      `json:"attempts"`
	Yards         int      `json:"yards"`
	Touchdowns    int      `json:"touchdowns"`
	Interceptions int      `json:"interceptions"`
}

// RushingStat is a complete rushing line for one player.
type RushingStat struct {
	Player     string   `json:"player"`
	Team       TeamSide `json:"team"`
	Carries    int      `json:"carries"`
	Yards      int      `json:"yards"`
	Touchdowns int      `json:"touchdowns"`
}

// ReceivingStat is a complete receiving line for one player.
type ReceivingStat struct {
	Player     string   `json:"player"`
	Team       TeamSide `json:"team"`
	Receptions int      `json:"receptions"`
	Yards      int      `json:"yards"`
	Touchdowns int      `json:"touchdowns"`
}

// PlayerStats groups the top player lines per category.
type PlayerStats struct {
	Passing   []PassingStat   `json:"passing"`
	Rushing   []RushingStat   `json:"rushing"`
	Receiving []ReceivingStat `json:"receiving"`
}

// Boxscore combines team and player statistics.
type Boxscore struct {
	TeamStats   TeamStatsPair `json:"team_stats"`
	PlayerStats PlayerStats   `json:"player_stats"`
}

// Venue describes where the game is played.
type Venue struct {
	Name   *string `json:"name"`
	City   *string `json:"city"`
	State  *string `json:"state"`
	Indoor *bool   `json:"indoor"`
}

// Broadcast describes how the game is televised.
type Broadcast struct {
	Network *string `json:"network"`
	Stream  *string `json:"stream"`
}

// Weather is a placeholder shell; neither provider carries it today.
type Weather struct {
	Description  *string  `json:"description"`
	TemperatureF *float64 `json:"temperature_f"`
	WindMPH      *float64 `json:"wind_mph"`
	HumidityPct  *float64 `json:"humidity_pct"`
}

// Meta groups venue, broadcast, and weather information.
type Meta struct {
	Venue     Venue     `json:"venue"`
	Broadcast Broadcast `json:"broadcast"`
	Weather   Weather   `json:"weather"`
}

// WinProbability is the latest win probability snapshot.
type WinProbability struct {
	Home           *float64 `json:"home"`
	Away           *float64 `json:"away"`
	LastUpdatedUTC *string  `json:"last_updated_utc"`
}

// TeamSuccessRates holds derived efficiency metrics per side.
type TeamSuccessRates struct {
	SuccessRate       *float64 `json:"success_rate"`
	ExplosivePlayRate *float64 `json:"explosive_play_rate"`
	EPAPerPlay        *float64 `json:"epa_per_play"`
}

// TeamSuccessRatesPair is success rates keyed by side.
type TeamSuccessRatesPair struct {
	Home TeamSuccessRates `json:"home"`
	Away TeamSuccessRates `json:"away"`
}

// Analytics groups win probability and success rates.
type Analytics struct {
	WinProbability   WinProbability       `json:"win_probability"`
	TeamSuccessRates TeamSuccessRatesPair `json:"team_success_rates"`
}

// GameLive is the full single-game response served to the dashboard.
type GameLive struct {
	Header    Header    `json:"header"`
	Drives    Drives    `json:"drives"`
	Scoring   Scoring   `json:"scoring"`
	Boxscore  Boxscore  `json:"boxscore"`
	Meta      Meta      `json:"meta"`
	Analytics Analytics `json:"analytics"`
}

// GameSituation is the live down-and-distance block on game details.
type GameSituation struct {
	Clock                 *string `json:"clock"`
	Period                *int    `json:"period"`
	Down                  *int    `json:"down"`
	Distance              *int    `json:"distance"`
	YardLine              *int    `json:"yardLine"`
	ShortDownDistanceText *string `json:"shortDownDistanceText"`
	DownDistanceText      *string `json:"downDistanceText"`
	PossessionTeamID      *string `json:"possessionTeamId"`
	PossessionText        *string `json:"possessionText"`
	IsRedZone             *bool   `json:"isRedZone"`
}

// BoxScoreCategory is one label/value table on the details view.
type BoxScoreCategory struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows"`
}

// GameDetails is the tabular per-game response for /api/game.
type GameDetails struct {
	Summary        GameSummary        `json:"summary"`
	Boxscore       []BoxScoreCategory `json:"boxscore"`
	TeamStats      []BoxScoreCategory `json:"teamStats"`
	Plays          []any              `json:"plays"`
	WinProbability []any              `json:"winProbability"`
	Situation      *GameSituation     `json:"situation"`
	CFBAnalytics   map[string]any     `json:"cfbAnalytics,omitempty"`
}

// Week describes one entry of a season calendar.
type Week struct {
	Number     int    `json:"number"`
	Label      string `json:"label"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	SeasonType int    `json:"seasonType"`
}

// TodayGame is the simplified row served by /games/today.
type TodayGame struct {
	GameID         string     `json:"game_id"`
	League         string     `json:"league"`
	Season         *int       `json:"season"`
	Week           *int       `json:"week"`
	Status         GameStatus `json:"status"`
	Quarter        *int       `json:"quarter"`
	Clock          *string    `json:"clock"`
	KickoffTimeUTC *string    `json:"kickoff_time_utc"`
	RedZone        bool       `json:"red_zone"`
	HomeTeam       TeamHeader `json:"home_team"`
	AwayTeam       TeamHeader `json:"away_team"`
}

// CFBTeam is the per-team block on the college scoreboard, enriched
// with season metadata and poll rank.
type CFBTeam struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ShortName    string  `json:"short_name"`
	Abbreviation *string `json:"abbreviation"`
	LogoURL      *string `json:"logo_url"`
	Rank         *int    `json:"rank"`
	Record       *string `json:"record"`
	Score        *int    `json:"score"`
	Conference   *string `json:"conference"`
}

// CFBGame is one row on the college scoreboard.
type CFBGame struct {
	GameID         string     `json:"game_id"`
	League         string     `json:"league"`
	Season         *int       `json:"season"`
	Week           *int       `json:"week"`
	Status         GameStatus `json:"status"`
	Quarter        *int       `json:"quarter"`
	Clock          *string    `json:"clock"`
	KickoffTimeUTC *string    `json:"kickoff_time_utc"`
	NeutralSite    bool       `json:"neutral_site"`
	HomeTeam       CFBTeam    `json:"home_team"`
	AwayTeam       CFBTeam    `json:"away_team"`
	VenueName      *string    `json:"venue_name"`
	TVNetwork      *string    `json:"tv_network"`
}

// CFBScoreboard is the response for /cfb/scoreboard.
type CFBScoreboard struct {
	Season int       `json:"season"`
	Week   int       `json:"week"`
	Games  []CFBGame `json:"games"`
}
