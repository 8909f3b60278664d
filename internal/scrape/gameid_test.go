package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseGameID(t *testing.T) {
	date, venue, err := ParseGameID("202310240BOS")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC), date)
	require.Equal(t, "BOS", venue)

	// bare form without the sequence digit
	date, venue, err = ParseGameID("20231024BOS")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC), date)
	require.Equal(t, "BOS", venue)
}

func TestParseGameIDRejectsMalformed(t *testing.T) {
	for _, id := range []string{
		"",
		"boxscore",
		"2023102BOS",
		"202310240bos",
		"202310240BOSTON",
	} {
		_, _, err := ParseGameID(id)
		require.Error(t, err, "id %q", id)
	}
}

func TestGameIDFromURL(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{"https://www.basketball-reference.com/boxscores/202310240BOS.html", "202310240BOS"},
		{"/boxscores/202310240DEN.html", "202310240DEN"},
		{"https://www.basketball-reference.com/leagues/NBA_2024_games.html", ""},
		{"https://www.basketball-reference.com/boxscores/", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, GameIDFromURL(test.url), "url %s", test.url)
	}
}

func TestSeasonOf(t *testing.T) {
	testCases := []struct {
		date     time.Time
		expected int
	}{
		{time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), 2023},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 2023},
		{time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), 2022},
		{time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), 2023},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, SeasonOf(test.date), "date %s", test.date)
	}
}
