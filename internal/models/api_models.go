package models

type GameStatus string

const (
	StatusFinal     GameStatus = "FINAL"
	StatusUpcoming  GameStatus = "UPCOMING"
	StatusPostponed GameStatus = "POSTPONED"
)

// Game is one schedule row. Points are meaningful only when Status is FINAL.
type Game struct {
	ID       FlexString `json:"GAME_ID"`
	Date     string     `json:"GAME_DATE_EST"`
	Time     string     `json:"GAME_TIME_EST,omitempty"`
	Matchup  string     `json:"MATCHUP"`
	Status   GameStatus `json:"STATUS"`
	HomeTeam string     `json:"HOME_TEAM"`
	AwayTeam string     `json:"AWAY_TEAM"`
	HomePts  *float64   `json:"HOME_PTS"`
	AwayPts  *float64   `json:"AWAY_PTS"`
}

type Team struct {
	ID           int    `json:"TEAM_ID"`
	Name         string `json:"TEAM_NAME"`
	ShortName    string `json:"TEAM_SHORT_NAME,omitempty"`
	Abbreviation string `json:"TEAM_ABBREVIATION,omitempty"`
	LogoURL      string `json:"TEAM_LOGO_URL,omitempty"`
}

type Conference string

const (
	East Conference = "East"
	West Conference = "West"
)

type StandingRow struct {
	TeamID           int        `json:"TeamID"`
	TeamName         string     `json:"TeamName"`
	Conference       Conference `json:"Conference"`
	ConferenceRecord string     `json:"ConferenceRecord"`
	Division         string     `json:"Division"`
	DivisionRecord   string     `json:"DivisionRecord"`
	Wins             int        `json:"WINS"`
	Losses           int        `json:"LOSSES"`
	WinPct           float64    `json:"WinPCT"`
}

// RosterPlayer carries per-game averages. Absent stats stay nil so they
// render as a placeholder rather than zero.
type RosterPlayer struct {
	TeamID     int        `json:"TEAM_ID"`
	TeamName   string     `json:"TEAM_NAME"`
	PlayerID   int        `json:"PLAYER_ID"`
	Name       string     `json:"PLAYER_NAME"`
	Jersey     FlexString `json:"JERSEY_NUMBER,omitempty"`
	Position   string     `json:"POSITION,omitempty"`
	Age        *float64   `json:"AGE,omitempty"`
	Height     string     `json:"HEIGHT,omitempty"`
	Weight     FlexString `json:"WEIGHT,omitempty"`
	Experience FlexString `json:"EXP,omitempty"`
	School     string     `json:"SCHOOL,omitempty"`

	GamesPlayed *float64 `json:"GP,omitempty"`
	Minutes     *float64 `json:"MIN,omitempty"`
	Points      *float64 `json:"PTS,omitempty"`
	Rebounds    *float64 `json:"REB,omitempty"`
	Assists     *float64 `json:"AST,omitempty"`
	Steals      *float64 `json:"STL,omitempty"`
	Blocks      *float64 `json:"BLK,omitempty"`
	Turnovers   *float64 `json:"TOV,omitempty"`
	FGPct       *float64 `json:"FG_PCT,omitempty"`
	FG3Pct      *float64 `json:"FG3_PCT,omitempty"`
	FTPct       *float64 `json:"FT_PCT,omitempty"`
}

type StatKey string

const (
	StatPoints    StatKey = "PTS"
	StatRebounds  StatKey = "REB"
	StatAssists   StatKey = "AST"
	StatSteals    StatKey = "STL"
	StatBlocks    StatKey = "BLK"
	StatTurnovers StatKey = "TOV"
	StatFGPct     StatKey = "FG_PCT"
	StatFG3Pct    StatKey = "FG3_PCT"
	StatFTPct     StatKey = "FT_PCT"
)

// Stat returns the value for key, or nil when the player has none.
func (p RosterPlayer) Stat(key StatKey) *float64 {
	switch key {
	case StatPoints:
		return p.Points
	case StatRebounds:
		return p.Rebounds
	case StatAssists:
		return p.Assists
	case StatSteals:
		return p.Steals
	case StatBlocks:
		return p.Blocks
	case StatTurnovers:
		return p.Turnovers
	case StatFGPct:
		return p.FGPct
	case StatFG3Pct:
		return p.FG3Pct
	case StatFTPct:
		return p.FTPct
	default:
		return nil
	}
}

type SeasonStat struct {
	SeasonStartYear int      `json:"SEASON_START_YEAR"`
	TeamName        string   `json:"TEAM_NAME"`
	AvgPts          *float64 `json:"avg_pts"`
	AvgAst          *float64 `json:"avg_ast"`
	AvgReb          *float64 `json:"avg_reb"`
	AvgFGPct        *float64 `json:"avg_fg_pct"`
	AvgFG3Pct       *float64 `json:"avg_fg3_pct"`
	AvgFTPct        *float64 `json:"avg_ft_pct"`
}

type ValueFormat string

const (
	Format1DP ValueFormat = "1dp"
	Format0DP ValueFormat = "0dp"
	FormatPct ValueFormat = "pct"
)

type Leader struct {
	Rank     int      `json:"rank"`
	PlayerID *int     `json:"playerId"`
	Name     string   `json:"name"`
	TeamID   *int     `json:"teamId"`
	TeamAbbr *string  `json:"teamAbbr"`
	Value    *float64 `json:"value"`
	GP       *float64 `json:"gp"`
}

type CardOption struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Format ValueFormat `json:"format"`
}

type LeadersByOption struct {
	Leader *Leader  `json:"leader"`
	Top    []Leader `json:"top"`
}

type LeaderCard struct {
	CardKey          string                     `json:"cardKey"`
	Title            string                     `json:"title"`
	Options          []CardOption               `json:"options"`
	DefaultOptionKey string                     `json:"defaultOptionKey"`
	LeadersByOption  map[string]LeadersByOption `json:"leadersByOption"`
}

type LeadersResponse struct {
	MinGP int          `json:"minGp"`
	Limit int          `json:"limit"`
	Mode  string       `json:"mode,omitempty"`
	Cards []LeaderCard `json:"cards"`
}

type PlayerSummary struct {
	PlayerID int    `json:"PLAYER_ID"`
	Name     string `json:"PLAYER_NAME"`
	TeamID   int    `json:"TEAM_ID,omitempty"`
	TeamAbbr string `json:"TEAM_ABBREVIATION,omitempty"`
	Position string `json:"POSITION,omitempty"`
}

type GameLogRow struct {
	GameID   FlexString `json:"GAME_ID"`
	GameDate string     `json:"GAME_DATE"`
	Matchup  string     `json:"MATCHUP"`
	WL       string     `json:"WL"`
	Minutes  *float64   `json:"MIN"`
	Points   *float64   `json:"PTS"`
	Rebounds *float64   `json:"REB"`
	Assists  *float64   `json:"AST"`
	FGPct    *float64   `json:"FG_PCT"`
	FG3Pct   *float64   `json:"FG3_PCT"`
	FTPct    *float64   `json:"FT_PCT"`
}

type WinLoss struct {
	W int `json:"w"`
	L int `json:"l"`
}

type Streak struct {
	Type *string `json:"type"`
	Len  int     `json:"len"`
}

type InsightsSide struct {
	Team       string   `json:"team"`
	RoadRecord *WinLoss `json:"roadRecord,omitempty"`
	HomeRecord *WinLoss `json:"homeRecord,omitempty"`
	Last10     WinLoss  `json:"last10"`
	Streak     Streak   `json:"streak"`
	RestDays   *int     `json:"restDays"`
	B2B        *bool    `json:"b2b"`
}

type HeadToHead struct {
	AwayWins int `json:"awayWins"`
	HomeWins int `json:"homeWins"`
	Games    int `json:"games"`
}

type MatchupInsights struct {
	Date      string       `json:"date"`
	Away      InsightsSide `json:"away"`
	Home      InsightsSide `json:"home"`
	H2HLast10 HeadToHead   `json:"h2hLast10"`
}
