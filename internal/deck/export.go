package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

func shirtOrder(p cards.Position) int {
	for i, v := range cards.Positions {
		if v == p {
			return i
		}
	}
	return len(cards.Positions)
}

// ExportDeckText renders the manifest in shirt-number order, then by name.
func ExportDeckText(d Deck) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	entries := append([]Entry(nil), d.Cards...)
	sort.SliceStable(entries, func(i, j int) bool {
		oi, oj := shirtOrder(entries[i].Position), shirtOrder(entries[j].Position)
		if oi != oj {
			return oi < oj
		}
		return entries[i].FullName < entries[j].FullName
	})
	for _, e := range entries {
		mark := "ok  "
		if !e.OK {
			mark = "FAIL"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s): %s", mark, e.FullName, e.Position, e.Message))
	}
	lines = append(lines, fmt.Sprintf("%d cards, %d failed", len(d.Cards), d.Failed()))
	return strings.Join(lines, "\n")
}
