package store

// Migrations are embedded rather than shipped as loose .sql files so the
// binary can bootstrap any empty database it is pointed at.

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "001_create_games",
		sql: `
			CREATE TABLE IF NOT EXISTS games (
				id SERIAL PRIMARY KEY,
				game_id VARCHAR(20) NOT NULL UNIQUE,
				game_date DATE NOT NULL,
				season INT NOT NULL,
				home_team VARCHAR(10) NOT NULL,
				away_team VARCHAR(10) NOT NULL,
				home_score INT NOT NULL,
				away_score INT NOT NULL,
				home_won BOOLEAN NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_games_season ON games(season);
			CREATE INDEX IF NOT EXISTS idx_games_game_date ON games(game_date);
		`,
	},
	{
		version: "002_create_team_game_stats",
		sql: `
			CREATE TABLE IF NOT EXISTS team_game_stats (
				id SERIAL PRIMARY KEY,
				game_id VARCHAR(20) NOT NULL REFERENCES games(game_id),
				team VARCHAR(10) NOT NULL,
				is_home BOOLEAN NOT NULL,
				mp VARCHAR(10) NOT NULL DEFAULT '',
				fg INT NOT NULL DEFAULT 0,
				fga INT NOT NULL DEFAULT 0,
				fg_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				fg3 INT NOT NULL DEFAULT 0,
				fg3a INT NOT NULL DEFAULT 0,
				fg3_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				ft INT NOT NULL DEFAULT 0,
				fta INT NOT NULL DEFAULT 0,
				ft_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				orb INT NOT NULL DEFAULT 0,
				drb INT NOT NULL DEFAULT 0,
				trb INT NOT NULL DEFAULT 0,
				ast INT NOT NULL DEFAULT 0,
				stl INT NOT NULL DEFAULT 0,
				blk INT NOT NULL DEFAULT 0,
				tov INT NOT NULL DEFAULT 0,
				pf INT NOT NULL DEFAULT 0,
				pts INT NOT NULL DEFAULT 0,
				ts_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				efg_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				fg3a_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				fta_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				orb_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				drb_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				trb_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				ast_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				stl_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				blk_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				tov_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				usg_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				off_rtg DOUBLE PRECISION NOT NULL DEFAULT 0,
				def_rtg DOUBLE PRECISION NOT NULL DEFAULT 0,
				fg_max INT NOT NULL DEFAULT 0,
				fga_max INT NOT NULL DEFAULT 0,
				fg3_max INT NOT NULL DEFAULT 0,
				fg3a_max INT NOT NULL DEFAULT 0,
				ft_max INT NOT NULL DEFAULT 0,
				fta_max INT NOT NULL DEFAULT 0,
				orb_max INT NOT NULL DEFAULT 0,
				drb_max INT NOT NULL DEFAULT 0,
				trb_max INT NOT NULL DEFAULT 0,
				ast_max INT NOT NULL DEFAULT 0,
				stl_max INT NOT NULL DEFAULT 0,
				blk_max INT NOT NULL DEFAULT 0,
				tov_max INT NOT NULL DEFAULT 0,
				pf_max INT NOT NULL DEFAULT 0,
				pts_max INT NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (game_id, team)
			);
		`,
	},
	{
		version: "003_create_player_game_stats",
		sql: `
			CREATE TABLE IF NOT EXISTS player_game_stats (
				id SERIAL PRIMARY KEY,
				game_id VARCHAR(20) NOT NULL REFERENCES games(game_id),
				team VARCHAR(10) NOT NULL,
				player_name VARCHAR(100) NOT NULL,
				mp VARCHAR(10) NOT NULL DEFAULT '',
				fg INT NOT NULL DEFAULT 0,
				fga INT NOT NULL DEFAULT 0,
				fg_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				fg3 INT NOT NULL DEFAULT 0,
				fg3a INT NOT NULL DEFAULT 0,
				fg3_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				ft INT NOT NULL DEFAULT 0,
				fta INT NOT NULL DEFAULT 0,
				ft_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				orb INT NOT NULL DEFAULT 0,
				drb INT NOT NULL DEFAULT 0,
				trb INT NOT NULL DEFAULT 0,
				ast INT NOT NULL DEFAULT 0,
				stl INT NOT NULL DEFAULT 0,
				blk INT NOT NULL DEFAULT 0,
				tov INT NOT NULL DEFAULT 0,
				pf INT NOT NULL DEFAULT 0,
				pts INT NOT NULL DEFAULT 0,
				plus_minus INT NOT NULL DEFAULT 0,
				ts_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				efg_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				fg3a_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				fta_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				orb_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				drb_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				trb_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				ast_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				stl_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				blk_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				tov_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				usg_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
				off_rtg DOUBLE PRECISION NOT NULL DEFAULT 0,
				def_rtg DOUBLE PRECISION NOT NULL DEFAULT 0,
				bpm DOUBLE PRECISION NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (game_id, team, player_name)
			);
			CREATE INDEX IF NOT EXISTS idx_player_game_stats_player
				ON player_game_stats(player_name);
		`,
	},
	{
		version: "004_create_game_officials",
		sql: `
			CREATE TABLE IF NOT EXISTS game_officials (
				id SERIAL PRIMARY KEY,
				game_id VARCHAR(20) NOT NULL REFERENCES games(game_id),
				name VARCHAR(100) NOT NULL,
				url VARCHAR(255) NOT NULL DEFAULT '',
				position INT NOT NULL,
				UNIQUE (game_id, position)
			);
		`,
	},
}
