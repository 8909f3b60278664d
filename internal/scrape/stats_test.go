package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapStatsBasic(t *testing.T) {
	row := Row{
		"Team Totals", "240", "40", "88", ".455", "12", "33", ".364",
		"16", "20", ".800", "9", "35", "44", "25", "6", "4", "12", "18", "108",
	}

	stats := MapStats(row, SchemaBasic)

	require.Equal(t, 40.0, stats["fg"])
	require.Equal(t, 88.0, stats["fga"])
	require.Equal(t, .455, stats["fg_pct"])
	require.Equal(t, .800, stats["ft_pct"])
	require.Equal(t, 108.0, stats["pts"])
	// minutes read 0 through the int path; the raw text is kept elsewhere
	require.Equal(t, 240.0, stats["mp"])
}

func TestMapStatsCoercion(t *testing.T) {
	// placeholder dashes, empty cells and clock-format minutes all
	// coerce to zero rather than failing the row
	row := Row{
		"C. Player", "34:12", "-", "", ".500", "x", "3", "",
		"2", "2", "1.000", "0", "4", "4", "5", "1", "0", "1", "2", "11",
		"+7",
	}

	stats := MapStats(row, SchemaBasicPlayer)

	require.Equal(t, 0.0, stats["mp"])
	require.Equal(t, 0.0, stats["fg"])
	require.Equal(t, 0.0, stats["fga"])
	require.Equal(t, .500, stats["fg_pct"])
	require.Equal(t, 0.0, stats["fg3"])
	require.Equal(t, 1.0, stats["ft_pct"])
	require.Equal(t, 11.0, stats["pts"])
	require.Equal(t, 7.0, stats["plus_minus"])
}

func TestMapStatsShortRow(t *testing.T) {
	// a "Did Not Play" row has almost no cells; everything reads zero
	stats := MapStats(Row{"B. Bench", "Did Not Play"}, SchemaBasic)

	for field, value := range stats {
		require.Zero(t, value, "field %s", field)
	}
	require.Len(t, stats, len(SchemaBasic.Fields))
}

func TestMapStatsAdvanced(t *testing.T) {
	row := Row{
		"Team Totals", ".590", ".545", ".389", ".211", "22.7", "77.3",
		"50.0", "61.9", "7.1", "8.9", "9.8", "100.0", "114.3", "110.2", "",
	}

	stats := MapStats(row, SchemaAdvanced)

	require.Equal(t, .590, stats["ts_pct"])
	require.Equal(t, 22.7, stats["orb_pct"])
	require.Equal(t, 114.3, stats["off_rtg"])
	require.Equal(t, 0.0, stats["bpm"])
}

func TestMaxStats(t *testing.T) {
	rows := []Row{
		{"A", "36:05", "9", "20", ".450", "4", "10", ".400", "6", "6", "1.000",
			"1", "3", "4", "7", "1", "0", "2", "2", "25"},
		{"B", "22:10", "3", "7", ".429", "2", "5", ".400", "0", "0", "",
			"2", "4", "6", "1", "1", "1", "0", "3", "8"},
	}

	maxes := MaxStats(rows, SchemaBasic)

	require.Equal(t, 25.0, maxes["pts_max"])
	require.Equal(t, 9.0, maxes["fg_max"])
	require.Equal(t, 20.0, maxes["fga_max"])
	require.Equal(t, 7.0, maxes["ast_max"])
	require.Equal(t, 2.0, maxes["orb_max"])
	require.Equal(t, .45, maxes["fg_pct_max"])
}

func TestMaxStatsEmpty(t *testing.T) {
	maxes := MaxStats(nil, SchemaBasic)

	require.Len(t, maxes, len(SchemaBasic.Fields))
	require.Zero(t, maxes["pts_max"])
}
