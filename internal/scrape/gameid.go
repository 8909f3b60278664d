package scrape

import (
	"fmt"
	"regexp"
	"time"
)

// Game ids follow basketball-reference's scheme: YYYYMMDD, an optional
// same-day sequence digit (0 in practice), then the 3-letter host venue
// code, e.g. 202310240BOS.
var gameIDPattern = regexp.MustCompile(`^(\d{8})\d?([A-Z]{3})$`)

var boxScoreURLPattern = regexp.MustCompile(`/boxscores/(\d{8,9}[A-Z]{3})\.html`)

// ParseGameID splits a game id into its date and host venue code.
func ParseGameID(gameID string) (time.Time, string, error) {
	m := gameIDPattern.FindStringSubmatch(gameID)
	if m == nil {
		return time.Time{}, "", fmt.Errorf("malformed game id %q", gameID)
	}

	date, err := time.Parse("20060102", m[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("malformed game id %q: %w", gameID, err)
	}

	return date, m[2], nil
}

// GameIDFromURL pulls the game id out of a box-score URL, or "" when the
// URL is not a box-score link.
func GameIDFromURL(url string) string {
	m := boxScoreURLPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// SeasonOf maps a game date to its season label: the calendar year the
// season tips off in. Games before July belong to the season that started
// the previous fall.
func SeasonOf(date time.Time) int {
	if date.Month() < time.July {
		return date.Year() - 1
	}
	return date.Year()
}
