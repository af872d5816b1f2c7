package deck

import (
	"testing"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

func TestExportDeckText(t *testing.T) {
	var d Deck
	d.Name = "Harbour RFC"
	d.Add(cards.PlayerData{FullName: "Zed Wing", Position: cards.Fullback}, true, "PDF saved to Downloads folder.")
	d.Add(cards.PlayerData{FullName: "Bo Prop", Position: cards.LooseheadProp}, false, "Error: Could not generate PDF.")
	d.Add(cards.PlayerData{FullName: "Al Prop", Position: cards.LooseheadProp}, true, "PDF saved to Downloads folder.")

	want := "# Harbour RFC\n" +
		"ok   Al Prop (Loosehead Prop): PDF saved to Downloads folder.\n" +
		"FAIL Bo Prop (Loosehead Prop): Error: Could not generate PDF.\n" +
		"ok   Zed Wing (Fullback): PDF saved to Downloads folder.\n" +
		"3 cards, 1 failed"
	if got := ExportDeckText(d); got != want {
		t.Fatalf("manifest =\n%s\nwant\n%s", got, want)
	}
	if d.Cards[0].FullName != "Zed Wing" {
		t.Fatal("export reordered the deck")
	}
}
