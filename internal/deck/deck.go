// Package deck tracks a batch of cards exported together, such as a full
// team sheet, and writes its manifest.
package deck

import "github.com/DanLigairi1978/ProID/internal/cards"

type Deck struct {
	Name  string  `json:"name"`
	Cards []Entry `json:"cards"`
}

// Entry is the export outcome of one player's card.
type Entry struct {
	FullName string         `json:"full_name"`
	Position cards.Position `json:"position"`
	OK       bool           `json:"ok"`
	Message  string         `json:"message"`
}

func (d *Deck) Add(p cards.PlayerData, ok bool, message string) {
	d.Cards = append(d.Cards, Entry{FullName: p.FullName, Position: p.Position, OK: ok, Message: message})
}

// Failed counts the entries whose export did not complete.
func (d Deck) Failed() int {
	n := 0
	for _, e := range d.Cards {
		if !e.OK {
			n++
		}
	}
	return n
}
