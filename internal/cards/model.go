package cards

import (
	"fmt"
	"strings"
)

// PlayerData holds the identity printed on one card.
type PlayerData struct {
	PlayerImage     string   `json:"player_image,omitempty"`
	FullName        string   `json:"full_name"`
	DOB             string   `json:"dob"`
	TeamName        string   `json:"team_name"`
	Address         string   `json:"address"`
	Position        Position `json:"position"`
	TwitterHandle   string   `json:"twitter_handle,omitempty"`
	InstagramHandle string   `json:"instagram_handle,omitempty"`
}

// HasPhoto reports whether a player image reference was supplied.
func (p PlayerData) HasPhoto() bool {
	return strings.TrimSpace(p.PlayerImage) != ""
}

// DisplayName is the name as printed on the front face.
func (p PlayerData) DisplayName() string {
	return strings.ToUpper(p.FullName)
}

// DisplayTeam is the team name as printed on both faces.
func (p PlayerData) DisplayTeam() string {
	return strings.ToUpper(p.TeamName)
}

// Validate checks the fields the input surface is expected to guarantee.
func (p PlayerData) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return &ConfigurationError{Field: "full_name", Value: p.FullName}
	}
	if !p.Position.Valid() {
		return &ConfigurationError{Field: "position", Value: string(p.Position)}
	}
	return nil
}

// CardConfig is the presentation configuration of a card.
type CardConfig struct {
	Format         Format   `json:"card_format" toml:"format"`
	Template       Template `json:"template" toml:"template"`
	PrimaryColor   RGB      `json:"primary_color" toml:"primary_color"`
	SecondaryColor RGB      `json:"secondary_color" toml:"secondary_color"`
}

// Validate fails on template or format values outside their enumerations.
func (c CardConfig) Validate() error {
	if !c.Template.Valid() {
		return &ConfigurationError{Field: "template", Value: string(c.Template)}
	}
	if !c.Format.Valid() {
		return &ConfigurationError{Field: "card_format", Value: string(c.Format)}
	}
	return nil
}

// DefaultConfig mirrors the first template with its recommended colours.
func DefaultConfig() CardConfig {
	return ApplyTemplateDefaults(CardConfig{Format: FormatCR80}, TemplateA)
}

// Size is a pixel size.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Format is a named physical card size.
type Format string

const (
	FormatCR79  Format = "CR79"
	FormatCR80  Format = "CR80"
	FormatCR100 Format = "CR100"
)

// Formats lists every supported card format.
var Formats = []Format{FormatCR79, FormatCR80, FormatCR100}

var formatSizes = map[Format]Size{
	FormatCR79:  {Width: 300, Height: 180},
	FormatCR80:  {Width: 340, Height: 204},
	FormatCR100: {Width: 360, Height: 216},
}

var formatLabels = map[Format]string{
	FormatCR79:  "CR79 (Small)",
	FormatCR80:  "CR80 (Standard)",
	FormatCR100: "CR100 (Oversized)",
}

func (f Format) Valid() bool {
	_, ok := formatSizes[f]
	return ok
}

// Dimensions returns the base pixel size of the format.
func (f Format) Dimensions() (Size, error) {
	s, ok := formatSizes[f]
	if !ok {
		return Size{}, &ConfigurationError{Field: "card_format", Value: string(f)}
	}
	return s, nil
}

func (f Format) Label() string {
	return formatLabels[f]
}

// ParseFormat accepts "CR80" as well as the "CR80 (Standard)" label.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(s)
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	return "", &ConfigurationError{Field: "card_format", Value: s}
}

// Template is one of the fixed front-face arrangements.
type Template string

const (
	TemplateA Template = "A"
	TemplateB Template = "B"
	TemplateC Template = "C"
	TemplateD Template = "D"
)

// Templates lists every template in display order.
var Templates = []Template{TemplateA, TemplateB, TemplateC, TemplateD}

func (t Template) Valid() bool {
	switch t {
	case TemplateA, TemplateB, TemplateC, TemplateD:
		return true
	}
	return false
}

func (t Template) Label() string {
	return "Style " + string(t)
}

// ParseTemplate accepts "A" as well as "Style A".
func ParseTemplate(s string) (Template, error) {
	s = strings.TrimSpace(s)
	for _, t := range Templates {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.Label()) {
			return t, nil
		}
	}
	return "", &ConfigurationError{Field: "template", Value: s}
}

// Position is a rugby playing position.
type Position string

const (
	LooseheadProp    Position = "Loosehead Prop"
	Hooker           Position = "Hooker"
	TightheadProp    Position = "Tighthead Prop"
	Lock             Position = "Lock"
	BlindsideFlanker Position = "Blindside Flanker"
	OpensideFlanker  Position = "Openside Flanker"
	NumberEight      Position = "Number Eight"
	ScrumHalf        Position = "Scrum-Half"
	FlyHalf          Position = "Fly-Half"
	LeftWing         Position = "Left Wing"
	InsideCentre     Position = "Inside Centre"
	OutsideCentre    Position = "Outside Centre"
	RightWing        Position = "Right Wing"
	Fullback         Position = "Fullback"
)

// Positions lists all positions in shirt-number order.
var Positions = []Position{
	LooseheadProp, Hooker, TightheadProp, Lock, BlindsideFlanker,
	OpensideFlanker, NumberEight, ScrumHalf, FlyHalf, LeftWing,
	InsideCentre, OutsideCentre, RightWing, Fullback,
}

func (p Position) Valid() bool {
	for _, v := range Positions {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePosition matches case-insensitively, ignoring '-' vs ' ' differences.
func ParsePosition(s string) (Position, error) {
	norm := func(v string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(v), "-", " "))
	}
	want := norm(s)
	for _, p := range Positions {
		if norm(string(p)) == want {
			return p, nil
		}
	}
	return "", &ConfigurationError{Field: "position", Value: s}
}
