package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// ErrNotFound marks a lookup that matched no rows.
var ErrNotFound = errors.New("not found")

const gameColumns = `
	id, game_id, game_date, season, home_team, away_team,
	home_score, away_score, home_won, created_at, updated_at
`

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetByGameID finds a game by its source-site game id.
func (r *GameRepository) GetByGameID(ctx context.Context, gameID string) (*store.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE game_id = $1`

	game := &store.Game{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&game.ID, &game.GameID, &game.GameDate, &game.Season,
		&game.HomeTeam, &game.AwayTeam, &game.HomeScore, &game.AwayScore,
		&game.HomeWon, &game.CreatedAt, &game.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// ExistsByGameID reports whether a game id is already stored.
func (r *GameRepository) ExistsByGameID(ctx context.Context, gameID string) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM games WHERE game_id = $1)", gameID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking game existence: %w", err)
	}
	return exists, nil
}

// GetBySeason returns all games in a season, oldest first.
func (r *GameRepository) GetBySeason(ctx context.Context, season int) ([]*store.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE season = $1 ORDER BY game_date, game_id`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying season games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		err := rows.Scan(
			&game.ID, &game.GameID, &game.GameDate, &game.Season,
			&game.HomeTeam, &game.AwayTeam, &game.HomeScore, &game.AwayScore,
			&game.HomeWon, &game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
