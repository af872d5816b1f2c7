// Package layout resolves player data and card configuration into positioned
// node trees, one per card face. Coordinates are fractions of the card's
// width and height; nothing here knows about pixels or fonts.
package layout

import "image/color"

type Face string

const (
	Front Face = "front"
	Back  Face = "back"
)

type Kind string

const (
	KindRect  Kind = "rect"
	KindImage Kind = "image"
	KindText  Kind = "text"
	KindIcon  Kind = "icon"
)

// Shape is the outline used by rect and image nodes.
type Shape string

const (
	ShapeRect    Shape = ""
	ShapeRounded Shape = "rounded"
	ShapeCircle  Shape = "circle"
	// ShapeSkewed is a parallelogram whose top edge is shifted right by
	// Skew times the box width and clipped to the box.
	ShapeSkewed Shape = "skewed"
)

// Tier is a font-size class; the rasterizer maps it to a point size.
type Tier string

const (
	TierDisplay Tier = "display"
	TierTitle   Tier = "title"
	TierHeading Tier = "heading"
	TierBody    Tier = "body"
	TierCaption Tier = "caption"
	TierFine    Tier = "fine"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type Icon string

const (
	IconQR        Icon = "qr"
	IconTwitter   Icon = "twitter"
	IconInstagram Icon = "instagram"
)

// Box is a rectangle in card fractions.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Gradient runs diagonally from the top-left corner (From) to the
// bottom-right corner (To) of the node's box.
type Gradient struct {
	From color.NRGBA `json:"from"`
	To   color.NRGBA `json:"to"`
}

// Node is one drawable element. Zero-alpha fills and strokes are not drawn.
type Node struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Box  Box    `json:"box"`

	Fill        color.NRGBA `json:"fill"`
	Stroke      color.NRGBA `json:"stroke"`
	StrokeWidth float64     `json:"stroke_width,omitempty"` // base pixels
	Shape       Shape       `json:"shape,omitempty"`
	Radius      float64     `json:"radius,omitempty"` // base pixels
	Skew        float64     `json:"skew,omitempty"`
	Gradient    *Gradient   `json:"gradient,omitempty"`

	Text      string `json:"text,omitempty"`
	Tier      Tier   `json:"tier,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Align     Align  `json:"align,omitempty"`
	Uppercase bool   `json:"uppercase,omitempty"`
	Wrap      bool   `json:"wrap,omitempty"`

	Source  string `json:"source,omitempty"`
	Icon    Icon   `json:"icon,omitempty"`
	Payload string `json:"payload,omitempty"`

	Children []Node `json:"children,omitempty"`
}

// Layout is the resolved tree of one face.
type Layout struct {
	Face Face `json:"face"`
	Root Node `json:"root"`
}

// Walk visits every node in drawing order.
func (l Layout) Walk(fn func(n Node)) {
	walk(l.Root, fn)
}

func walk(n Node, fn func(n Node)) {
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}

// Find returns the node with the given ID.
func (l Layout) Find(id string) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	l.Walk(func(n Node) {
		if !ok && n.ID == id {
			found, ok = n, true
		}
	})
	return found, ok
}

// IDs lists node IDs in drawing order.
func (l Layout) IDs() []string {
	var ids []string
	l.Walk(func(n Node) { ids = append(ids, n.ID) })
	return ids
}

var (
	white       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	gray400     = color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
	gray800     = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	shade900    = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0x80}
	transparent = color.NRGBA{}
	black50     = color.NRGBA{A: 0x80}
)

func rect(id string, b Box, fill color.NRGBA, children ...Node) Node {
	return Node{ID: id, Kind: KindRect, Box: b, Fill: fill, Children: children}
}

func text(id string, b Box, s string, tier Tier, c color.NRGBA, align Align) Node {
	return Node{ID: id, Kind: KindText, Box: b, Text: s, Tier: tier, Fill: c, Align: align}
}

func bold(n Node) Node {
	n.Bold = true
	return n
}

func upper(n Node) Node {
	n.Uppercase = true
	return n
}
