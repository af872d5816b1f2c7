package cards

// TemplateColor is the recommended colour pair of a template.
type TemplateColor struct {
	Name      string   `json:"name"`
	Template  Template `json:"template"`
	Primary   RGB      `json:"primary"`
	Secondary RGB      `json:"secondary"`
}

// TemplateColors holds one entry per template, in template order.
var TemplateColors = []TemplateColor{
	{Name: "Navy/Gold", Template: TemplateA, Primary: MustHex("#002D62"), Secondary: MustHex("#FDBB30")},
	{Name: "Teal/White", Template: TemplateB, Primary: MustHex("#008080"), Secondary: MustHex("#FFFFFF")},
	{Name: "Blue/Black", Template: TemplateC, Primary: MustHex("#00529B"), Secondary: MustHex("#1B1B1B")},
	{Name: "Maroon/Silver", Template: TemplateD, Primary: MustHex("#800000"), Secondary: MustHex("#C0C0C0")},
}

// DefaultColors returns the recommended pair for t.
func DefaultColors(t Template) (TemplateColor, bool) {
	for _, tc := range TemplateColors {
		if tc.Template == t {
			return tc, true
		}
	}
	return TemplateColor{}, false
}

// ApplyTemplateDefaults returns a copy of cfg switched to t with t's
// recommended colours. Unknown templates keep the existing colours.
func ApplyTemplateDefaults(cfg CardConfig, t Template) CardConfig {
	cfg.Template = t
	if tc, ok := DefaultColors(t); ok {
		cfg.PrimaryColor = tc.Primary
		cfg.SecondaryColor = tc.Secondary
	}
	return cfg
}
