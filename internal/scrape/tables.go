package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Row is the trimmed text of one table row's cells (th and td, in document
// order). Cell 0 is the row label; stat values start at offset 1.
type Row []string

// ExtractRows returns the rows of the table with the given id. The second
// return is false when the table is absent, which is a normal outcome for
// optional tables (advanced stats are missing from older seasons).
func ExtractRows(doc *goquery.Document, tableID string) ([]Row, bool) {
	table := doc.Find("table#" + tableID)
	if table.Length() == 0 {
		return nil, false
	}

	var rows []Row
	table.First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row Row
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, row)
	})

	return rows, true
}
