package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const boxScoreFixture = `
<html><body><div id="content">
<table id="line_score">
	<tr class="over_header"><td colspan="6">Scoring</td></tr>
	<tr><th></th><th>1</th><th>2</th><th>3</th><th>4</th><th>T</th></tr>
	<tr><td>MIL</td><td>30</td><td>25</td><td>28</td><td>25</td><td>108</td></tr>
	<tr><td>BOS</td><td>28</td><td>30</td><td>26</td><td>28</td><td>112</td></tr>
</table>

<table id="box-away-game-basic">
	<tr><th>Starters</th><th>MP</th><th>FG</th><th>FGA</th><th>FG%</th><th>3P</th><th>3PA</th><th>3P%</th><th>FT</th><th>FTA</th><th>FT%</th><th>ORB</th><th>DRB</th><th>TRB</th><th>AST</th><th>STL</th><th>BLK</th><th>TOV</th><th>PF</th><th>PTS</th><th>+/-</th></tr>
	<tr><td>Damian Lillard</td><td>36:05</td><td>9</td><td>20</td><td>.450</td><td>4</td><td>10</td><td>.400</td><td>6</td><td>6</td><td>1.000</td><td>1</td><td>3</td><td>4</td><td>7</td><td>1</td><td>0</td><td>2</td><td>2</td><td>28</td><td>-4</td></tr>
	<tr><td>Reserves</td></tr>
	<tr><td>Pat Connaughton</td><td>22:10</td><td>3</td><td>7</td><td>.429</td><td>2</td><td>5</td><td>.400</td><td>0</td><td>0</td><td></td><td>2</td><td>4</td><td>6</td><td>1</td><td>1</td><td>1</td><td>0</td><td>3</td><td>8</td><td>+2</td></tr>
	<tr><td>Team Totals</td><td>240</td><td>40</td><td>88</td><td>.455</td><td>12</td><td>33</td><td>.364</td><td>16</td><td>20</td><td>.800</td><td>9</td><td>35</td><td>44</td><td>25</td><td>6</td><td>4</td><td>12</td><td>18</td><td>108</td></tr>
</table>

<table id="box-home-game-basic">
	<tr><th>Starters</th><th>MP</th><th>FG</th><th>FGA</th><th>FG%</th><th>3P</th><th>3PA</th><th>3P%</th><th>FT</th><th>FTA</th><th>FT%</th><th>ORB</th><th>DRB</th><th>TRB</th><th>AST</th><th>STL</th><th>BLK</th><th>TOV</th><th>PF</th><th>PTS</th><th>+/-</th></tr>
	<tr><td>Jayson Tatum</td><td>37:22</td><td>10</td><td>20</td><td>.500</td><td>3</td><td>8</td><td>.375</td><td>7</td><td>8</td><td>.875</td><td>1</td><td>8</td><td>9</td><td>5</td><td>1</td><td>2</td><td>3</td><td>2</td><td>30</td><td>+8</td></tr>
	<tr class="thead"><td>Reserves</td><td></td></tr>
	<tr><td>Jaylen Brown</td><td>35:40</td><td>9</td><td>17</td><td>.529</td><td>2</td><td>5</td><td>.400</td><td>5</td><td>6</td><td>.833</td><td>0</td><td>5</td><td>5</td><td>4</td><td>2</td><td>0</td><td>2</td><td>3</td><td>25</td><td>+6</td></tr>
	<tr><td>Team Totals</td><td>240</td><td>42</td><td>90</td><td>.467</td><td>13</td><td>35</td><td>.371</td><td>15</td><td>19</td><td>.789</td><td>10</td><td>36</td><td>46</td><td>26</td><td>7</td><td>5</td><td>11</td><td>19</td><td>112</td></tr>
</table>

<table id="box-home-game-advanced">
	<tr><th>Starters</th><th>TS%</th><th>eFG%</th><th>3PAr</th><th>FTr</th><th>ORB%</th><th>DRB%</th><th>TRB%</th><th>AST%</th><th>STL%</th><th>BLK%</th><th>TOV%</th><th>USG%</th><th>ORtg</th><th>DRtg</th><th>BPM</th></tr>
	<tr><td>Jayson Tatum</td><td>.620</td><td>.575</td><td>.400</td><td>.400</td><td>3.4</td><td>24.1</td><td>14.3</td><td>22.7</td><td>1.4</td><td>4.2</td><td>11.1</td><td>28.5</td><td>121.0</td><td>105.0</td><td>8.5</td></tr>
	<tr><td>Jaylen Brown</td><td>.600</td><td>.588</td><td>.294</td><td>.353</td><td>0.0</td><td>15.2</td><td>8.1</td><td>18.2</td><td>2.8</td><td>0.0</td><td>9.0</td><td>24.3</td><td>118.0</td><td>108.0</td><td>5.2</td></tr>
	<tr><td>Team Totals</td><td>.590</td><td>.545</td><td>.389</td><td>.211</td><td>22.7</td><td>77.3</td><td>50.0</td><td>61.9</td><td>7.1</td><td>8.9</td><td>9.8</td><td>100.0</td><td>114.3</td><td>110.2</td><td></td></tr>
</table>

<div><strong>Officials:</strong>
	<a href="/referees/smithja99r.html">Jane Smith</a>,
	<a href="/referees/doejoh99r.html">John Doe</a>,
	<a href="/referees/leeann99r.html">Ann Lee</a>
</div>
</div></body></html>`

func parseFixture(t *testing.T) *BoxScore {
	t.Helper()
	doc, err := ParseDocument(boxScoreFixture)
	require.NoError(t, err)

	box, err := Assemble(doc, "202310240BOS")
	require.NoError(t, err)
	return box
}

func TestAssembleGame(t *testing.T) {
	box := parseFixture(t)

	require.Equal(t, "202310240BOS", box.Game.GameID)
	require.Equal(t, time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC), box.Game.GameDate)
	require.Equal(t, 2023, box.Game.Season)
	require.Equal(t, "BOS", box.Game.HomeTeam)
	require.Equal(t, "MIL", box.Game.AwayTeam)
	require.Equal(t, 112, box.Game.HomeScore)
	require.Equal(t, 108, box.Game.AwayScore)
	require.True(t, box.Game.HomeWon)
	require.Equal(t, 220, box.ScoreSum())
}

func TestAssembleTeamStats(t *testing.T) {
	box := parseFixture(t)

	require.Len(t, box.TeamStats, 2)
	away, home := box.TeamStats[0], box.TeamStats[1]

	require.Equal(t, "MIL", away.Team)
	require.False(t, away.IsHome)
	require.Equal(t, "240", away.MP)
	require.Equal(t, 40, away.FG)
	require.Equal(t, .455, away.FGPct)
	require.Equal(t, 108, away.PTS)
	// away side has no advanced table in this document
	require.Zero(t, away.TSPct)
	require.Zero(t, away.OffRtg)
	// maxima come from player rows, not the totals row
	require.Equal(t, 28, away.PTSMax)
	require.Equal(t, 9, away.FGMax)
	require.Equal(t, 7, away.ASTMax)
	require.Equal(t, 6, away.TRBMax)

	require.Equal(t, "BOS", home.Team)
	require.True(t, home.IsHome)
	require.Equal(t, 112, home.PTS)
	require.Equal(t, .590, home.TSPct)
	require.Equal(t, 114.3, home.OffRtg)
	require.Equal(t, 30, home.PTSMax)
	require.Equal(t, 9, home.TRBMax)
}

func TestAssemblePlayers(t *testing.T) {
	box := parseFixture(t)

	require.Len(t, box.Players, 4)

	byName := make(map[string]int)
	for i, p := range box.Players {
		byName[p.PlayerName] = i
	}
	require.Len(t, byName, 4)

	lillard := box.Players[byName["Damian Lillard"]]
	require.Equal(t, "MIL", lillard.Team)
	require.Equal(t, "36:05", lillard.MP)
	require.Equal(t, 28, lillard.PTS)
	require.Equal(t, -4, lillard.PlusMinus)
	require.Equal(t, 1.0, lillard.FTPct)
	require.Zero(t, lillard.BPM)

	connaughton := box.Players[byName["Pat Connaughton"]]
	require.Equal(t, 8, connaughton.PTS)
	require.Equal(t, 2, connaughton.PlusMinus)
	require.Zero(t, connaughton.FTPct)

	tatum := box.Players[byName["Jayson Tatum"]]
	require.Equal(t, "BOS", tatum.Team)
	require.Equal(t, 30, tatum.PTS)
	require.Equal(t, 8, tatum.PlusMinus)
	require.Equal(t, .620, tatum.TSPct)
	require.Equal(t, 28.5, tatum.USGPct)
	require.Equal(t, 8.5, tatum.BPM)
}

func TestAssembleOfficials(t *testing.T) {
	box := parseFixture(t)

	require.Len(t, box.Officials, 3)
	require.Equal(t, "Jane Smith", box.Officials[0].Name)
	require.Equal(t, "/referees/smithja99r.html", box.Officials[0].URL)
	require.Equal(t, 1, box.Officials[0].Position)
	require.Equal(t, "Ann Lee", box.Officials[2].Name)
	require.Equal(t, 3, box.Officials[2].Position)
}

func TestAssembleWithoutLineScore(t *testing.T) {
	doc, err := ParseDocument("<html><body><p>game postponed</p></body></html>")
	require.NoError(t, err)

	_, err = Assemble(doc, "202310240BOS")
	require.Error(t, err)
}

func TestAssembleRejectsBadGameID(t *testing.T) {
	doc, err := ParseDocument(boxScoreFixture)
	require.NoError(t, err)

	_, err = Assemble(doc, "not-a-game")
	require.Error(t, err)
}

func TestAssembleWithoutOfficials(t *testing.T) {
	stripped := `
<html><body>
<table id="line_score">
	<tr><th></th><th>T</th></tr>
	<tr><td>MIL</td><td>108</td></tr>
	<tr><td>BOS</td><td>112</td></tr>
</table>
</body></html>`
	doc, err := ParseDocument(stripped)
	require.NoError(t, err)

	box, err := Assemble(doc, "202310240BOS")
	require.NoError(t, err)
	require.Empty(t, box.Officials)
	require.Empty(t, box.TeamStats)
	require.Empty(t, box.Players)
}
