package paramfetch

import (
	"strings"
	"testing"
)

const fixtureHTML = `
<html><body>
<table id="stacking-energies">
<tr><td>-240</td><td>-330</td></tr>
<tr><td>-330</td><td>-230</td></tr>
</table>
</body></html>
`

func TestStackingTableParsesFixture(t *testing.T) {
	got, err := StackingTable(strings.NewReader(fixtureHTML))
	if err != nil {
		t.Fatalf("StackingTable: %v", err)
	}
	want := [][]int{{-240, -330}, {-330, -230}}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("got[%d][%d] = %d, want %d", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestStackingTableRejectsNonNumericCell(t *testing.T) {
	html := `<table id="stacking-energies"><tr><td>oops</td></tr></table>`
	_, err := StackingTable(strings.NewReader(html))
	if err == nil {
		t.Fatalf("expected an error for a non-numeric cell")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("error = %v (%T), want *Error", err, err)
	}
}

func TestStackingTableRejectsRaggedRows(t *testing.T) {
	html := `<table id="stacking-energies">
<tr><td>1</td><td>2</td></tr>
<tr><td>3</td></tr>
</table>`
	_, err := StackingTable(strings.NewReader(html))
	if err == nil {
		t.Fatalf("expected an error for a ragged row")
	}
}

func TestStackingTableRejectsEmptyDocument(t *testing.T) {
	_, err := StackingTable(strings.NewReader("<html></html>"))
	if err == nil {
		t.Fatalf("expected an error when no table is found")
	}
}
