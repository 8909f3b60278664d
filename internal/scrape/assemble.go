package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/courtside/internal/store"
)

// BoxScore is a fully assembled game ready for storage.
type BoxScore struct {
	Game      *store.Game
	TeamStats []*store.TeamGameStats
	Players   []*store.PlayerGameStats
	Officials []*store.GameOfficial
}

// ScoreSum is the combined final score, used to decide whether a stored
// game differs from a refetched one.
func (b *BoxScore) ScoreSum() int {
	return b.Game.HomeScore + b.Game.AwayScore
}

type lineScore struct {
	team  string
	score int
}

// splitHomeAway applies the site's positional convention: the line score
// lists the away team first and the home team second. The document carries
// no explicit marker, so this convention lives in exactly one place.
func splitHomeAway(lines []lineScore) (away, home lineScore) {
	return lines[0], lines[1]
}

// Assemble builds a BoxScore from a parsed box-score document. The line
// score is mandatory; team sections, player lines and officials degrade
// independently, so a malformed sidebar never costs the whole game.
func Assemble(doc *goquery.Document, gameID string) (*BoxScore, error) {
	date, _, err := ParseGameID(gameID)
	if err != nil {
		return nil, err
	}

	lines, err := parseLineScore(doc)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}
	away, home := splitHomeAway(lines)

	box := &BoxScore{
		Game: &store.Game{
			GameID:    gameID,
			GameDate:  date,
			Season:    SeasonOf(date),
			HomeTeam:  home.team,
			AwayTeam:  away.team,
			HomeScore: home.score,
			AwayScore: away.score,
			HomeWon:   home.score > away.score,
		},
	}

	sides := []struct {
		label  string
		team   string
		isHome bool
	}{
		{"away", away.team, false},
		{"home", home.team, true},
	}
	for _, side := range sides {
		team, players := assembleSide(doc, gameID, side.label, side.team, side.isHome)
		if team != nil {
			box.TeamStats = append(box.TeamStats, team)
		}
		box.Players = append(box.Players, players...)
	}

	box.Officials = extractOfficials(doc, gameID)

	return box, nil
}

// parseLineScore reads the two team rows of the line_score table. Rows
// whose final cell is not a number are ignored, so a stray annotation row
// does not miscount as a team.
func parseLineScore(doc *goquery.Document) ([]lineScore, error) {
	rows, ok := ExtractRows(doc, "line_score")
	if !ok {
		return nil, fmt.Errorf("no line_score table")
	}

	var lines []lineScore
	for _, row := range skipHeader(rows) {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		score, err := strconv.Atoi(row[len(row)-1])
		if err != nil {
			continue
		}
		lines = append(lines, lineScore{team: row[0], score: score})
	}

	if len(lines) != 2 {
		return nil, fmt.Errorf("line_score has %d team rows, want 2", len(lines))
	}
	return lines, nil
}

func skipHeader(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// assembleSide reads one team's basic and advanced tables. A missing
// basic table drops the side entirely; a missing advanced table leaves
// the advanced fields zero.
func assembleSide(doc *goquery.Document, gameID, label, team string, isHome bool) (*store.TeamGameStats, []*store.PlayerGameStats) {
	basicRows, ok := ExtractRows(doc, fmt.Sprintf("box-%s-game-basic", label))
	if !ok || len(basicRows) < 2 {
		return nil, nil
	}

	totals := basicRows[len(basicRows)-1]
	basic := MapStats(totals, SchemaBasic)

	advTotals := map[string]float64{}
	advByPlayer := map[string]Row{}
	if advRows, ok := ExtractRows(doc, fmt.Sprintf("box-%s-game-advanced", label)); ok && len(advRows) >= 2 {
		advTotals = MapStats(advRows[len(advRows)-1], SchemaAdvanced)
		for _, row := range advRows[1 : len(advRows)-1] {
			if len(row) > 0 && row[0] != "" {
				advByPlayer[row[0]] = row
			}
		}
	}

	players := selectPlayerRows(basicRows)
	maxes := MaxStats(players, SchemaBasic)

	teamStats := buildTeamStats(gameID, team, isHome, rawCell(totals, 1), basic, advTotals, maxes)

	var lines []*store.PlayerGameStats
	for _, row := range players {
		stats := MapStats(row, SchemaBasicPlayer)
		adv := map[string]float64{}
		if advRow, found := advByPlayer[row[0]]; found {
			adv = MapStats(advRow, SchemaAdvanced)
		}
		lines = append(lines, buildPlayerStats(gameID, team, row[0], rawCell(row, 1), stats, adv))
	}

	return teamStats, lines
}

// selectPlayerRows keeps the per-player rows of a basic table: everything
// between the header and the totals row, minus section labels.
func selectPlayerRows(rows []Row) []Row {
	if len(rows) < 3 {
		return nil
	}
	var out []Row
	for _, row := range rows[1 : len(rows)-1] {
		if len(row) == 0 {
			continue
		}
		name := row[0]
		if name == "" || name == "Reserves" || name == "Team Totals" {
			continue
		}
		out = append(out, row)
	}
	return out
}

func rawCell(row Row, pos int) string {
	if pos < len(row) {
		return row[pos]
	}
	return ""
}

func buildTeamStats(gameID, team string, isHome bool, mp string, basic, adv, maxes map[string]float64) *store.TeamGameStats {
	return &store.TeamGameStats{
		GameID: gameID,
		Team:   team,
		IsHome: isHome,

		MP:     mp,
		FG:     int(basic["fg"]),
		FGA:    int(basic["fga"]),
		FGPct:  basic["fg_pct"],
		FG3:    int(basic["fg3"]),
		FG3A:   int(basic["fg3a"]),
		FG3Pct: basic["fg3_pct"],
		FT:     int(basic["ft"]),
		FTA:    int(basic["fta"]),
		FTPct:  basic["ft_pct"],
		ORB:    int(basic["orb"]),
		DRB:    int(basic["drb"]),
		TRB:    int(basic["trb"]),
		AST:    int(basic["ast"]),
		STL:    int(basic["stl"]),
		BLK:    int(basic["blk"]),
		TOV:    int(basic["tov"]),
		PF:     int(basic["pf"]),
		PTS:    int(basic["pts"]),

		TSPct:    adv["ts_pct"],
		EFGPct:   adv["efg_pct"],
		FG3ARate: adv["fg3a_rate"],
		FTARate:  adv["fta_rate"],
		ORBPct:   adv["orb_pct"],
		DRBPct:   adv["drb_pct"],
		TRBPct:   adv["trb_pct"],
		ASTPct:   adv["ast_pct"],
		STLPct:   adv["stl_pct"],
		BLKPct:   adv["blk_pct"],
		TOVPct:   adv["tov_pct"],
		USGPct:   adv["usg_pct"],
		OffRtg:   adv["off_rtg"],
		DefRtg:   adv["def_rtg"],

		FGMax:   int(maxes["fg_max"]),
		FGAMax:  int(maxes["fga_max"]),
		FG3Max:  int(maxes["fg3_max"]),
		FG3AMax: int(maxes["fg3a_max"]),
		FTMax:   int(maxes["ft_max"]),
		FTAMax:  int(maxes["fta_max"]),
		ORBMax:  int(maxes["orb_max"]),
		DRBMax:  int(maxes["drb_max"]),
		TRBMax:  int(maxes["trb_max"]),
		ASTMax:  int(maxes["ast_max"]),
		STLMax:  int(maxes["stl_max"]),
		BLKMax:  int(maxes["blk_max"]),
		TOVMax:  int(maxes["tov_max"]),
		PFMax:   int(maxes["pf_max"]),
		PTSMax:  int(maxes["pts_max"]),
	}
}

func buildPlayerStats(gameID, team, name, mp string, basic, adv map[string]float64) *store.PlayerGameStats {
	return &store.PlayerGameStats{
		GameID:     gameID,
		Team:       team,
		PlayerName: name,

		MP:        mp,
		FG:        int(basic["fg"]),
		FGA:       int(basic["fga"]),
		FGPct:     basic["fg_pct"],
		FG3:       int(basic["fg3"]),
		FG3A:      int(basic["fg3a"]),
		FG3Pct:    basic["fg3_pct"],
		FT:        int(basic["ft"]),
		FTA:       int(basic["fta"]),
		FTPct:     basic["ft_pct"],
		ORB:       int(basic["orb"]),
		DRB:       int(basic["drb"]),
		TRB:       int(basic["trb"]),
		AST:       int(basic["ast"]),
		STL:       int(basic["stl"]),
		BLK:       int(basic["blk"]),
		TOV:       int(basic["tov"]),
		PF:        int(basic["pf"]),
		PTS:       int(basic["pts"]),
		PlusMinus: int(basic["plus_minus"]),

		TSPct:    adv["ts_pct"],
		EFGPct:   adv["efg_pct"],
		FG3ARate: adv["fg3a_rate"],
		FTARate:  adv["fta_rate"],
		ORBPct:   adv["orb_pct"],
		DRBPct:   adv["drb_pct"],
		TRBPct:   adv["trb_pct"],
		ASTPct:   adv["ast_pct"],
		STLPct:   adv["stl_pct"],
		BLKPct:   adv["blk_pct"],
		TOVPct:   adv["tov_pct"],
		USGPct:   adv["usg_pct"],
		OffRtg:   adv["off_rtg"],
		DefRtg:   adv["def_rtg"],
		BPM:      adv["bpm"],
	}
}

// extractOfficials finds the "Officials:" marker and records the first
// three linked names after it, in listed order. Absence yields an empty
// slice; officiating data is a best-effort extra.
func extractOfficials(doc *goquery.Document, gameID string) []*store.GameOfficial {
	var officials []*store.GameOfficial

	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(sel.Text(), "Officials:") {
			return true
		}
		// A nested div still holds the marker; keep descending to the
		// innermost container so unrelated page links are not swept up.
		nested := sel.ChildrenFiltered("div").FilterFunction(func(_ int, c *goquery.Selection) bool {
			return strings.Contains(c.Text(), "Officials:")
		})
		if nested.Length() > 0 {
			return true
		}

		sel.Find("a").EachWithBreak(func(i int, link *goquery.Selection) bool {
			if i >= 3 {
				return false
			}
			href, _ := link.Attr("href")
			officials = append(officials, &store.GameOfficial{
				GameID:   gameID,
				Name:     strings.TrimSpace(link.Text()),
				URL:      href,
				Position: i + 1,
			})
			return true
		})
		return false
	})

	return officials
}
