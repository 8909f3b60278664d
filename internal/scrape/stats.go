package scrape

import (
	"strconv"
	"strings"
)

// Schema maps table cell positions to stat names. Position 0 is the row
// label (player name or "Team Totals") and is never part of the schema;
// Fields[i] names the value at cell i+1.
type Schema struct {
	Name   string
	Fields []string
	// AllFloat forces float coercion for every field (advanced tables).
	// Otherwise only fields containing "pct" are floats.
	AllFloat bool
}

// SchemaBasic covers the totals row of a basic box-score table.
var SchemaBasic = Schema{
	Name: "basic",
	Fields: []string{
		"mp", "fg", "fga", "fg_pct", "fg3", "fg3a", "fg3_pct",
		"ft", "fta", "ft_pct", "orb", "drb", "trb", "ast",
		"stl", "blk", "tov", "pf", "pts",
	},
}

// SchemaBasicPlayer extends SchemaBasic with the plus/minus column that
// only player rows carry.
var SchemaBasicPlayer = Schema{
	Name:   "basic_player",
	Fields: append(append([]string{}, SchemaBasic.Fields...), "plus_minus"),
}

// SchemaAdvanced covers advanced box-score tables. Every field is a rate
// or rating, so everything coerces as float.
var SchemaAdvanced = Schema{
	Name: "advanced",
	Fields: []string{
		"ts_pct", "efg_pct", "fg3a_rate", "fta_rate", "orb_pct",
		"drb_pct", "trb_pct", "ast_pct", "stl_pct", "blk_pct",
		"tov_pct", "usg_pct", "off_rtg", "def_rtg", "bpm",
	},
	AllFloat: true,
}

// MapStats resolves a row against a schema. Coercion is best effort and
// never errors: malformed or absent cells become zero, so a placeholder
// dash or a "Did Not Play" note reads as an empty stat line rather than
// poisoning the whole row.
func MapStats(row Row, schema Schema) map[string]float64 {
	stats := make(map[string]float64, len(schema.Fields))
	for i, field := range schema.Fields {
		pos := i + 1
		var raw string
		if pos < len(row) {
			raw = row[pos]
		}
		if schema.AllFloat || strings.Contains(field, "pct") {
			stats[field] = coerceFloat(raw)
		} else {
			stats[field] = float64(coerceInt(raw))
		}
	}
	return stats
}

// MaxStats computes field-wise maxima over player rows, keyed by the
// schema field name with a "_max" suffix. Callers pass player rows only;
// header and totals rows would skew the maxima.
func MaxStats(rows []Row, schema Schema) map[string]float64 {
	maxes := make(map[string]float64, len(schema.Fields))
	for _, field := range schema.Fields {
		maxes[field+"_max"] = 0
	}
	for _, row := range rows {
		stats := MapStats(row, schema)
		for field, value := range stats {
			key := field + "_max"
			if value > maxes[key] {
				maxes[key] = value
			}
		}
	}
	return maxes
}

func coerceInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func coerceFloat(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.0
	}
	return f
}
