package layout

import (
	"image/color"
	"strings"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

const (
	contactTop  = 104.0
	contactRowH = 11.0
)

// ResolveBack builds the template-independent back face.
func ResolveBack(p cards.PlayerData, cfg cards.CardConfig) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	secondary := cfg.SecondaryColor.NRGBA(0xFF)

	children := []Node{
		bold(text("back.heading", grid(16, 12, 308, 14), "Player Code of Conduct", TierCaption, gray800, AlignCenter)),
		bullet("back.membership", 28, 11, "Membership: Valid for the current season only."),
		bullet("back.conduct", 39, 21, "Conduct: Holder agrees to abide by World Rugby Code of Conduct and club bylaws."),
		bullet("back.liability", 60, 21, "Liability: "+p.DisplayTeam()+" is not responsible for injury or loss of property."),
		bullet("back.verification", 81, 21, "Verification: This card is club property and must be surrendered upon termination of membership."),
	}
	if c, ok := contactBlock(p, secondary); ok {
		children = append(children, c)
	}
	children = append(children,
		bold(text("back.signature.mark", grid(16, 140, 100, 12), "X", TierCaption, gray400, AlignLeft)),
		rect("back.signature.line", grid(16, 154, 205, 1), gray800),
		bold(text("back.signature.caption", grid(16, 156, 205, 9), "PLAYER SIGNATURE", TierFine, gray800, AlignCenter)),
		Node{
			ID:      "back.marker",
			Kind:    KindIcon,
			Box:     grid(268, 112, 56, 56),
			Fill:    secondary,
			Icon:    IconQR,
			Payload: markerPayload(p),
		},
		rect("back.bar", grid(0, 180, gridW, 24), gray800),
	)

	root := rect("back.background", grid(0, 0, gridW, gridH), white, children...)
	return Layout{Face: Back, Root: root}, nil
}

func bullet(id string, y, h float64, s string) Node {
	n := text(id, grid(16, y, 308, h), "• "+s, TierFine, gray800, AlignLeft)
	n.Wrap = true
	return n
}

// contactBlock lists each non-empty social handle on its own row. The block
// is as tall as its rows and absent when there are none.
func contactBlock(p cards.PlayerData, tint color.NRGBA) (Node, bool) {
	type entry struct {
		key    string
		icon   Icon
		handle string
	}
	var rows []entry
	if strings.TrimSpace(p.TwitterHandle) != "" {
		rows = append(rows, entry{"twitter", IconTwitter, p.TwitterHandle})
	}
	if strings.TrimSpace(p.InstagramHandle) != "" {
		rows = append(rows, entry{"instagram", IconInstagram, p.InstagramHandle})
	}
	if len(rows) == 0 {
		return Node{}, false
	}

	block := rect("back.contact", grid(16, contactTop, 243, contactRowH*float64(len(rows))), transparent)
	for i, r := range rows {
		y := contactTop + contactRowH*float64(i)
		block.Children = append(block.Children,
			Node{
				ID:   "back.contact." + r.key + ".icon",
				Kind: KindIcon,
				Box:  grid(16, y+1, 9, 9),
				Fill: tint,
				Icon: r.icon,
			},
			text("back.contact."+r.key, grid(29, y, 230, contactRowH), r.handle, TierFine, gray800, AlignLeft),
		)
	}
	return block, true
}

// markerPayload is the text encoded in the back-face QR marker.
func markerPayload(p cards.PlayerData) string {
	return strings.Join([]string{"PROID", p.DisplayName(), p.DisplayTeam(), p.DOB}, "|")
}
