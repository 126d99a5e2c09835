package paramfetch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Error reports a malformed cell in the scraped table.
type Error struct {
	Row, Col int
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("paramfetch: row %d col %d: %s", e.Row, e.Col, e.Reason)
}

// StackingTable scrapes a numeric HTML table (selector
// "table#stacking-energies", one <tr> per row, one <td> per column) into a
// matrix for assignment to thermo.Params.StackingPair. Every row must have
// the same column count as the first; a non-numeric cell is an Error. The
// matrix is returned at whatever size the table has: squareness and the
// nbPairs x nbPairs shape thermo.Params uses are not checked.
func StackingTable(r io.Reader) ([][]int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("paramfetch: parsing HTML: %w", err)
	}

	var rows [][]int
	var parseErr error
	width := -1

	doc.Find("table#stacking-energies tr").EachWithBreak(func(ri int, tr *goquery.Selection) bool {
		var row []int
		var cellErr error
		tr.Find("td").EachWithBreak(func(ci int, td *goquery.Selection) bool {
			text := strings.TrimSpace(td.Text())
			v, err := strconv.Atoi(text)
			if err != nil {
				cellErr = &Error{Row: ri, Col: ci, Reason: fmt.Sprintf("not an integer: %q", text)}
				return false
			}
			row = append(row, v)
			return true
		})
		if cellErr != nil {
			parseErr = cellErr
			return false
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			parseErr = &Error{Row: ri, Col: len(row), Reason: "row length does not match the first row"}
			return false
		}
		rows = append(rows, row)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("paramfetch: no rows found under table#stacking-energies")
	}
	return rows, nil
}
