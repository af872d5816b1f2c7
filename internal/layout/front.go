package layout

import (
	"image/color"
	"math"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

// Layouts are drawn on a 340x204 design grid (CR80) and stored as fractions.
// All supported formats share the 5:3 aspect, so squares stay square.
const (
	gridW = 340.0
	gridH = 204.0
)

func grid(x, y, w, h float64) Box {
	return Box{X: x / gridW, Y: y / gridH, W: w / gridW, H: h / gridH}
}

// ResolveFront builds the front face for the configured template.
func ResolveFront(p cards.PlayerData, cfg cards.CardConfig) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	var root Node
	switch cfg.Template {
	case cards.TemplateA:
		root = frontA(p, cfg)
	case cards.TemplateB:
		root = frontB(p, cfg)
	case cards.TemplateC:
		root = frontC(p, cfg)
	case cards.TemplateD:
		root = frontD(p, cfg)
	default:
		return Layout{}, &cards.ConfigurationError{Field: "template", Value: string(cfg.Template)}
	}
	return Layout{Face: Front, Root: root}, nil
}

func background(cfg cards.CardConfig, children ...Node) Node {
	return rect("front.background", grid(0, 0, gridW, gridH), cfg.PrimaryColor.NRGBA(0xFF), children...)
}

// photo returns the photo slot, or nothing when the player has no image.
func photo(p cards.PlayerData, b Box, shape Shape, border color.NRGBA) []Node {
	if !p.HasPhoto() {
		return nil
	}
	n := Node{
		ID:     "front.photo",
		Kind:   KindImage,
		Box:    b,
		Shape:  shape,
		Source: p.PlayerImage,
	}
	if shape == ShapeRounded {
		n.Radius = 6
	}
	if border.A > 0 {
		n.Stroke = border
		n.StrokeWidth = 4
	}
	return []Node{n}
}

func dobLine(p cards.PlayerData) string {
	return "DOB: " + p.DOB
}

// frontA: skewed secondary panel on the right, photo top-left, team top-right,
// name and metadata bottom-left.
func frontA(p cards.PlayerData, cfg cards.CardConfig) Node {
	primary := cfg.PrimaryColor.NRGBA(0xFF)
	secondary := cfg.SecondaryColor.NRGBA(0xFF)

	panelBox := grid(gridW/3, 0, gridW*2/3, gridH)
	skew := gridH * math.Tan(12*math.Pi/180) / (gridW * 2 / 3)
	panel := rect("front.panel", panelBox, secondary)
	panel.Shape, panel.Skew = ShapeSkewed, skew
	shade := rect("front.panel-shade", panelBox, shade900)
	shade.Shape, shade.Skew = ShapeSkewed, skew

	children := []Node{panel, shade}
	children = append(children, photo(p, grid(16, 16, 96, 96), ShapeRounded, secondary)...)
	children = append(children,
		text("front.label", grid(136, 16, 188, 14), "PLAYER ID", TierCaption, secondary, AlignRight),
		text("front.team", grid(136, 30, 188, 34), p.DisplayTeam(), TierTitle, primary, AlignRight),
		text("front.name", grid(16, 124, 308, 36), p.DisplayName(), TierDisplay, white, AlignLeft),
		bold(text("front.dob", grid(16, 162, 308, 12), dobLine(p), TierFine, secondary, AlignLeft)),
		upper(bold(text("front.position", grid(16, 176, 308, 12), string(p.Position), TierFine, white, AlignLeft))),
	)
	return background(cfg, children...)
}

// frontB: centred column over a diagonal darkening gradient, circular photo.
func frontB(p cards.PlayerData, cfg cards.CardConfig) Node {
	secondary := cfg.SecondaryColor.NRGBA(0xFF)

	overlay := rect("front.overlay", grid(0, 0, gridW, gridH), transparent)
	overlay.Gradient = &Gradient{From: transparent, To: black50}

	children := []Node{overlay}
	children = append(children, photo(p, grid(114, 10, 112, 112), ShapeCircle, secondary)...)
	children = append(children,
		text("front.name", grid(16, 124, 308, 30), p.DisplayName(), TierDisplay, white, AlignCenter),
		bold(text("front.team", grid(16, 154, 308, 18), p.DisplayTeam(), TierHeading, secondary, AlignCenter)),
		text("front.dob", grid(16, 172, 308, 11), dobLine(p), TierFine, white, AlignCenter),
		upper(text("front.position", grid(16, 184, 308, 11), string(p.Position), TierFine, white, AlignCenter)),
	)
	return background(cfg, children...)
}

// frontC: secondary side band holding the photo, text column on the right.
func frontC(p cards.PlayerData, cfg cards.CardConfig) Node {
	secondary := cfg.SecondaryColor.NRGBA(0xFF)
	band := gridW / 3
	col := band + 16
	colW := gridW - col - 16

	children := []Node{rect("front.band", grid(0, 0, band, gridH), secondary)}
	children = append(children, photo(p, grid((band-96)/2, 54, 96, 96), ShapeRounded, transparent)...)
	children = append(children,
		text("front.name", grid(col, 58, colW, 28), p.DisplayName(), TierTitle, white, AlignLeft),
		bold(text("front.team", grid(col, 86, colW, 18), p.DisplayTeam(), TierHeading, white, AlignLeft)),
		rect("front.accent", grid(col, 108, colW/4, 4), secondary),
		bold(text("front.dob", grid(col, 118, colW, 12), dobLine(p), TierFine, white, AlignLeft)),
		upper(bold(text("front.position", grid(col, 132, colW, 12), string(p.Position), TierFine, white, AlignLeft))),
	)
	return background(cfg, children...)
}

// frontD: secondary top band carrying the team name, photo and name below.
func frontD(p cards.PlayerData, cfg cards.CardConfig) Node {
	primary := cfg.PrimaryColor.NRGBA(0xFF)
	secondary := cfg.SecondaryColor.NRGBA(0xFF)

	children := []Node{
		rect("front.band", grid(0, 0, gridW, gridH/3), secondary),
		text("front.team", grid(16, 12, 308, 44), p.DisplayTeam(), TierDisplay, primary, AlignLeft),
	}
	children = append(children, photo(p, grid(16, 92, 96, 96), ShapeRounded, secondary)...)
	children = append(children,
		text("front.name", grid(128, 130, 196, 30), p.DisplayName(), TierDisplay, white, AlignLeft),
		bold(text("front.dob", grid(128, 162, 196, 12), dobLine(p), TierFine, white, AlignLeft)),
		upper(bold(text("front.position", grid(128, 176, 196, 12), string(p.Position), TierFine, white, AlignLeft))),
	)
	return background(cfg, children...)
}
