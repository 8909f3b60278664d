package store

import (
	"time"
)

// Game is one played game, keyed by the source site's game id.
type Game struct {
	ID        int       `json:"id" db:"id"`
	GameID    string    `json:"game_id" db:"game_id"`
	GameDate  time.Time `json:"game_date" db:"game_date"`
	Season    int       `json:"season" db:"season"`
	HomeTeam  string    `json:"home_team" db:"home_team"`
	AwayTeam  string    `json:"away_team" db:"away_team"`
	HomeScore int       `json:"home_score" db:"home_score"`
	AwayScore int       `json:"away_score" db:"away_score"`
	HomeWon   bool      `json:"home_won" db:"home_won"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TeamGameStats is one team's totals line for a game, plus the per-player
// maxima for the counting stats. Minutes stay textual; the site reports
// them as MM:SS and nothing downstream does arithmetic on them.
type TeamGameStats struct {
	ID     int    `json:"id" db:"id"`
	GameID string `json:"game_id" db:"game_id"`
	Team   string `json:"team" db:"team"`
	IsHome bool   `json:"is_home" db:"is_home"`

	MP     string  `json:"mp" db:"mp"`
	FG     int     `json:"fg" db:"fg"`
	FGA    int     `json:"fga" db:"fga"`
	FGPct  float64 `json:"fg_pct" db:"fg_pct"`
	FG3    int     `json:"fg3" db:"fg3"`
	FG3A   int     `json:"fg3a" db:"fg3a"`
	FG3Pct float64 `json:"fg3_pct" db:"fg3_pct"`
	FT     int     `json:"ft" db:"ft"`
	FTA    int     `json:"fta" db:"fta"`
	FTPct  float64 `json:"ft_pct" db:"ft_pct"`
	ORB    int     `json:"orb" db:"orb"`
	DRB    int     `json:"drb" db:"drb"`
	TRB    int     `json:"trb" db:"trb"`
	AST    int     `json:"ast" db:"ast"`
	STL    int     `json:"stl" db:"stl"`
	BLK    int     `json:"blk" db:"blk"`
	TOV    int     `json:"tov" db:"tov"`
	PF     int     `json:"pf" db:"pf"`
	PTS    int     `json:"pts" db:"pts"`

	TSPct    float64 `json:"ts_pct" db:"ts_pct"`
	EFGPct   float64 `json:"efg_pct" db:"efg_pct"`
	FG3ARate float64 `json:"fg3a_rate" db:"fg3a_rate"`
	FTARate  float64 `json:"fta_rate" db:"fta_rate"`
	ORBPct   float64 `json:"orb_pct" db:"orb_pct"`
	DRBPct   float64 `json:"drb_pct" db:"drb_pct"`
	TRBPct   float64 `json:"trb_pct" db:"trb_pct"`
	ASTPct   float64 `json:"ast_pct" db:"ast_pct"`
	STLPct   float64 `json:"stl_pct" db:"stl_pct"`
	BLKPct   float64 `json:"blk_pct" db:"blk_pct"`
	TOVPct   float64 `json:"tov_pct" db:"tov_pct"`
	USGPct   float64 `json:"usg_pct" db:"usg_pct"`
	OffRtg   float64 `json:"off_rtg" db:"off_rtg"`
	DefRtg   float64 `json:"def_rtg" db:"def_rtg"`

	FGMax   int `json:"fg_max" db:"fg_max"`
	FGAMax  int `json:"fga_max" db:"fga_max"`
	FG3Max  int `json:"fg3_max" db:"fg3_max"`
	FG3AMax int `json:"fg3a_max" db:"fg3a_max"`
	FTMax   int `json:"ft_max" db:"ft_max"`
	FTAMax  int `json:"fta_max" db:"fta_max"`
	ORBMax  int `json:"orb_max" db:"orb_max"`
	DRBMax  int `json:"drb_max" db:"drb_max"`
	TRBMax  int `json:"trb_max" db:"trb_max"`
	ASTMax  int `json:"ast_max" db:"ast_max"`
	STLMax  int `json:"stl_max" db:"stl_max"`
	BLKMax  int `json:"blk_max" db:"blk_max"`
	TOVMax  int `json:"tov_max" db:"tov_max"`
	PFMax   int `json:"pf_max" db:"pf_max"`
	PTSMax  int `json:"pts_max" db:"pts_max"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PlayerGameStats is one player's line for a game.
type PlayerGameStats struct {
	ID         int    `json:"id" db:"id"`
	GameID     string `json:"game_id" db:"game_id"`
	Team       string `json:"team" db:"team"`
	PlayerName string `json:"player_name" db:"player_name"`

	MP        string  `json:"mp" db:"mp"`
	FG        int     `json:"fg" db:"fg"`
	FGA       int     `json:"fga" db:"fga"`
	FGPct     float64 `json:"fg_pct" db:"fg_pct"`
	FG3       int     `json:"fg3" db:"fg3"`
	FG3A      int     `json:"fg3a" db:"fg3a"`
	FG3Pct    float64 `json:"fg3_pct" db:"fg3_pct"`
	FT        int     `json:"ft" db:"ft"`
	FTA       int     `json:"fta" db:"fta"`
	FTPct     float64 `json:"ft_pct" db:"ft_pct"`
	ORB       int     `json:"orb" db:"orb"`
	DRB       int     `json:"drb" db:"drb"`
	TRB       int     `json:"trb" db:"trb"`
	AST       int     `json:"ast" db:"ast"`
	STL       int     `json:"stl" db:"stl"`
	BLK       int     `json:"blk" db:"blk"`
	TOV       int     `json:"tov" db:"tov"`
	PF        int     `json:"pf" db:"pf"`
	PTS       int     `json:"pts" db:"pts"`
	PlusMinus int     `json:"plus_minus" db:"plus_minus"`

	TSPct    float64 `json:"ts_pct" db:"ts_pct"`
	EFGPct   float64 `json:"efg_pct" db:"efg_pct"`
	FG3ARate float64 `json:"fg3a_rate" db:"fg3a_rate"`
	FTARate  float64 `json:"fta_rate" db:"fta_rate"`
	ORBPct   float64 `json:"orb_pct" db:"orb_pct"`
	DRBPct   float64 `json:"drb_pct" db:"drb_pct"`
	TRBPct   float64 `json:"trb_pct" db:"trb_pct"`
	ASTPct   float64 `json:"ast_pct" db:"ast_pct"`
	STLPct   float64 `json:"stl_pct" db:"stl_pct"`
	BLKPct   float64 `json:"blk_pct" db:"blk_pct"`
	TOVPct   float64 `json:"tov_pct" db:"tov_pct"`
	USGPct   float64 `json:"usg_pct" db:"usg_pct"`
	OffRtg   float64 `json:"off_rtg" db:"off_rtg"`
	DefRtg   float64 `json:"def_rtg" db:"def_rtg"`
	BPM      float64 `json:"bpm" db:"bpm"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// GameOfficial is one referee assignment. Position is the 1-based order
// the official is listed in on the page.
type GameOfficial struct {
	ID       int    `json:"id" db:"id"`
	GameID   string `json:"game_id" db:"game_id"`
	Name     string `json:"name" db:"name"`
	URL      string `json:"url" db:"url"`
	Position int    `json:"position" db:"position"`
}
