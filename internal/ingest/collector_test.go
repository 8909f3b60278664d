package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/scrape"
)

const schedulePageFixture = `
<html><body>
<div id="all_schedule">
	<a href="/boxscores/202310240BOS.html">Box Score</a>
	<a href="/boxscores/202310240DEN.html">Box Score</a>
	<a href="/boxscores/">Index</a>
	<a href="/teams/BOS/2024.html">Boston Celtics</a>
	<a href="https://www.basketball-reference.com/boxscores/202310250MIL.html">Box Score</a>
	<a>no href</a>
</div>
</body></html>`

func TestCollectBoxScoreLinks(t *testing.T) {
	doc, err := scrape.ParseDocument(schedulePageFixture)
	require.NoError(t, err)

	urls := collectLinks(doc, "https://www.basketball-reference.com", func(href string) bool {
		return strings.Contains(href, "boxscore") && strings.Contains(href, ".html")
	})

	require.Equal(t, []string{
		"https://www.basketball-reference.com/boxscores/202310240BOS.html",
		"https://www.basketball-reference.com/boxscores/202310240DEN.html",
		"https://www.basketball-reference.com/boxscores/202310250MIL.html",
	}, urls)
}

func TestCollectLinksResolvesRelative(t *testing.T) {
	doc, err := scrape.ParseDocument(`<html><body><a href="/leagues/NBA_2024_games-october.html">October</a></body></html>`)
	require.NoError(t, err)

	urls := collectLinks(doc, "https://www.basketball-reference.com", func(href string) bool {
		return href != ""
	})

	require.Equal(t, []string{"https://www.basketball-reference.com/leagues/NBA_2024_games-october.html"}, urls)
}
