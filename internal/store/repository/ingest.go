package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/fortuna/courtside/internal/scrape"
	"github.com/fortuna/courtside/internal/store"
)

// Outcome is the disposition of one game handed to the store.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeInserted
	OutcomeSkipped
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUpdated:
		return "updated"
	default:
		return "failed"
	}
}

// IngestRepository writes assembled box scores. A game and all of its
// child rows land in one transaction; a game is either fully stored or
// not stored at all.
type IngestRepository struct {
	db *store.Database
}

// NewIngestRepository creates a new ingest repository
func NewIngestRepository(db *store.Database) *IngestRepository {
	return &IngestRepository{db: db}
}

// Ingest stores a new game. An already-stored game id is Skipped, not an
// error; that includes losing the race against a concurrent ingester,
// which surfaces as a unique violation on commit.
func (r *IngestRepository) Ingest(ctx context.Context, box *scrape.BoxScore) (Outcome, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM games WHERE game_id = $1)", box.Game.GameID,
	).Scan(&exists)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("checking game existence: %w", err)
	}
	if exists {
		return OutcomeSkipped, nil
	}

	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.insertAll(ctx, tx, box); err != nil {
		if isUniqueViolation(err) {
			return OutcomeSkipped, nil
		}
		return OutcomeFailed, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return OutcomeSkipped, nil
		}
		return OutcomeFailed, fmt.Errorf("committing game %s: %w", box.Game.GameID, err)
	}

	return OutcomeInserted, nil
}

// Update patches an existing game in place: scores and outcome on the
// game row, team rows matched by (game_id, team), player rows matched by
// (game_id, team, player_name). Rows absent from the refetched document
// are left untouched, never deleted. A game not yet stored is inserted
// whole.
func (r *IngestRepository) Update(ctx context.Context, box *scrape.BoxScore) (Outcome, error) {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE games
		SET home_score = $2, away_score = $3, home_won = $4, updated_at = NOW()
		WHERE game_id = $1
	`, box.Game.GameID, box.Game.HomeScore, box.Game.AwayScore, box.Game.HomeWon)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("updating game %s: %w", box.Game.GameID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return OutcomeFailed, fmt.Errorf("updating game %s: %w", box.Game.GameID, err)
	}

	outcome := OutcomeUpdated
	if affected == 0 {
		if err := r.insertAll(ctx, tx, box); err != nil {
			return OutcomeFailed, err
		}
		outcome = OutcomeInserted
	} else {
		if err := r.upsertChildren(ctx, tx, box); err != nil {
			return OutcomeFailed, err
		}
	}

	if err := tx.Commit(); err != nil {
		return OutcomeFailed, fmt.Errorf("committing game %s: %w", box.Game.GameID, err)
	}

	return outcome, nil
}

// insertAll writes the game row and all children inside tx.
func (r *IngestRepository) insertAll(ctx context.Context, tx *sql.Tx, box *scrape.BoxScore) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO games (game_id, game_date, season, home_team, away_team,
			home_score, away_score, home_won)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, box.Game.GameID, box.Game.GameDate, box.Game.Season,
		box.Game.HomeTeam, box.Game.AwayTeam,
		box.Game.HomeScore, box.Game.AwayScore, box.Game.HomeWon)
	if err != nil {
		return fmt.Errorf("inserting game %s: %w", box.Game.GameID, err)
	}

	for _, team := range box.TeamStats {
		if _, err := tx.ExecContext(ctx, insertTeamStatsQuery, teamStatsArgs(team)...); err != nil {
			return fmt.Errorf("inserting team stats %s/%s: %w", team.GameID, team.Team, err)
		}
	}

	for _, player := range box.Players {
		if _, err := tx.ExecContext(ctx, insertPlayerStatsQuery, playerStatsArgs(player)...); err != nil {
			return fmt.Errorf("inserting player stats %s/%s: %w", player.GameID, player.PlayerName, err)
		}
	}

	for _, official := range box.Officials {
		if err := r.upsertOfficial(ctx, tx, official); err != nil {
			return err
		}
	}

	return nil
}

// upsertChildren patches child rows for a game that already exists.
func (r *IngestRepository) upsertChildren(ctx context.Context, tx *sql.Tx, box *scrape.BoxScore) error {
	for _, team := range box.TeamStats {
		if _, err := tx.ExecContext(ctx, upsertTeamStatsQuery, teamStatsArgs(team)...); err != nil {
			return fmt.Errorf("upserting team stats %s/%s: %w", team.GameID, team.Team, err)
		}
	}

	for _, player := range box.Players {
		if _, err := tx.ExecContext(ctx, upsertPlayerStatsQuery, playerStatsArgs(player)...); err != nil {
			return fmt.Errorf("upserting player stats %s/%s: %w", player.GameID, player.PlayerName, err)
		}
	}

	for _, official := range box.Officials {
		if err := r.upsertOfficial(ctx, tx, official); err != nil {
			return err
		}
	}

	return nil
}

func (r *IngestRepository) upsertOfficial(ctx context.Context, tx *sql.Tx, official *store.GameOfficial) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO game_officials (game_id, name, url, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (game_id, position) DO UPDATE SET
			name = EXCLUDED.name,
			url = EXCLUDED.url
	`, official.GameID, official.Name, official.URL, official.Position)
	if err != nil {
		return fmt.Errorf("upserting official %s/%d: %w", official.GameID, official.Position, err)
	}
	return nil
}

// Totals are the aggregate counts the stats surface reports.
type Totals struct {
	Games        int    `json:"games"`
	TeamStats    int    `json:"team_stats"`
	PlayerStats  int    `json:"player_stats"`
	Officials    int    `json:"officials"`
	Seasons      []int  `json:"seasons"`
	EarliestGame string `json:"earliest_game,omitempty"`
	LatestGame   string `json:"latest_game,omitempty"`
}

// Stats aggregates what the store currently holds.
func (r *IngestRepository) Stats(ctx context.Context) (*Totals, error) {
	totals := &Totals{}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM games", &totals.Games},
		{"SELECT COUNT(*) FROM team_game_stats", &totals.TeamStats},
		{"SELECT COUNT(*) FROM player_game_stats", &totals.PlayerStats},
		{"SELECT COUNT(*) FROM game_officials", &totals.Officials},
	}
	for _, c := range counts {
		if err := r.db.DB().QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("counting rows: %w", err)
		}
	}

	rows, err := r.db.DB().QueryContext(ctx, "SELECT DISTINCT season FROM games ORDER BY season")
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var season int
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		totals.Seasons = append(totals.Seasons, season)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var earliest, latest sql.NullTime
	err = r.db.DB().QueryRowContext(ctx,
		"SELECT MIN(game_date), MAX(game_date) FROM games",
	).Scan(&earliest, &latest)
	if err != nil {
		return nil, fmt.Errorf("querying date range: %w", err)
	}
	if earliest.Valid {
		totals.EarliestGame = earliest.Time.Format("2006-01-02")
	}
	if latest.Valid {
		totals.LatestGame = latest.Time.Format("2006-01-02")
	}

	return totals, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// The stat tables are wide enough that the column lists live in one place
// and the placeholder/update clauses are derived from them.

var teamStatsColumns = []string{
	"game_id", "team", "is_home", "mp",
	"fg", "fga", "fg_pct", "fg3", "fg3a", "fg3_pct", "ft", "fta", "ft_pct",
	"orb", "drb", "trb", "ast", "stl", "blk", "tov", "pf", "pts",
	"ts_pct", "efg_pct", "fg3a_rate", "fta_rate", "orb_pct", "drb_pct",
	"trb_pct", "ast_pct", "stl_pct", "blk_pct", "tov_pct", "usg_pct",
	"off_rtg", "def_rtg",
	"fg_max", "fga_max", "fg3_max", "fg3a_max", "ft_max", "fta_max",
	"orb_max", "drb_max", "trb_max", "ast_max", "stl_max", "blk_max",
	"tov_max", "pf_max", "pts_max",
}

var playerStatsColumns = []string{
	"game_id", "team", "player_name", "mp",
	"fg", "fga", "fg_pct", "fg3", "fg3a", "fg3_pct", "ft", "fta", "ft_pct",
	"orb", "drb", "trb", "ast", "stl", "blk", "tov", "pf", "pts",
	"plus_minus",
	"ts_pct", "efg_pct", "fg3a_rate", "fta_rate", "orb_pct", "drb_pct",
	"trb_pct", "ast_pct", "stl_pct", "blk_pct", "tov_pct", "usg_pct",
	"off_rtg", "def_rtg", "bpm",
}

var (
	insertTeamStatsQuery   = insertQuery("team_game_stats", teamStatsColumns)
	insertPlayerStatsQuery = insertQuery("player_game_stats", playerStatsColumns)

	upsertTeamStatsQuery = insertTeamStatsQuery +
		conflictClause([]string{"game_id", "team"}, teamStatsColumns)
	upsertPlayerStatsQuery = insertPlayerStatsQuery +
		conflictClause([]string{"game_id", "team", "player_name"}, playerStatsColumns)
)

func insertQuery(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

func conflictClause(keys, columns []string) string {
	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}
	var updates []string
	for _, col := range columns {
		if keySet[col] {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	updates = append(updates, "updated_at = NOW()")
	return fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s",
		strings.Join(keys, ", "), strings.Join(updates, ", "))
}

func teamStatsArgs(t *store.TeamGameStats) []interface{} {
	return []interface{}{
		t.GameID, t.Team, t.IsHome, t.MP,
		t.FG, t.FGA, t.FGPct, t.FG3, t.FG3A, t.FG3Pct, t.FT, t.FTA, t.FTPct,
		t.ORB, t.DRB, t.TRB, t.AST, t.STL, t.BLK, t.TOV, t.PF, t.PTS,
		t.TSPct, t.EFGPct, t.FG3ARate, t.FTARate, t.ORBPct, t.DRBPct,
		t.TRBPct, t.ASTPct, t.STLPct, t.BLKPct, t.TOVPct, t.USGPct,
		t.OffRtg, t.DefRtg,
		t.FGMax, t.FGAMax, t.FG3Max, t.FG3AMax, t.FTMax, t.FTAMax,
		t.ORBMax, t.DRBMax, t.TRBMax, t.ASTMax, t.STLMax, t.BLKMax,
		t.TOVMax, t.PFMax, t.PTSMax,
	}
}

func playerStatsArgs(p *store.PlayerGameStats) []interface{} {
	return []interface{}{
		p.GameID, p.Team, p.PlayerName, p.MP,
		p.FG, p.FGA, p.FGPct, p.FG3, p.FG3A, p.FG3Pct, p.FT, p.FTA, p.FTPct,
		p.ORB, p.DRB, p.TRB, p.AST, p.STL, p.BLK, p.TOV, p.PF, p.PTS,
		p.PlusMinus,
		p.TSPct, p.EFGPct, p.FG3ARate, p.FTARate, p.ORBPct, p.DRBPct,
		p.TRBPct, p.ASTPct, p.STLPct, p.BLKPct, p.TOVPct, p.USGPct,
		p.OffRtg, p.DefRtg, p.BPM,
	}
}
