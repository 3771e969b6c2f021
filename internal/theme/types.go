package theme

// GrayScale holds the three neutral gray steps.
type GrayScale struct {
	Light  string `yaml:"light" koanf:"light"`
	Medium string `yaml:"medium" koanf:"medium"`
	Dark   string `yaml:"dark" koanf:"dark"`
}

// Palette is the brand color set.
type Palette struct {
	Black string    `yaml:"black" koanf:"black"`
	White string    `yaml:"white" koanf:"white"`
	Gray  GrayScale `yaml:"gray" koanf:"gray"`
	Blue  string    `yaml:"blue" koanf:"blue"`
	Green string    `yaml:"green" koanf:"green"`
	Red   string    `yaml:"red" koanf:"red"`
}

// Theme is the full design-token table. Name prefixes the palette tokens
// ("xgrid" yields color-xgrid-blue and friends).
type Theme struct {
	Name         string            `yaml:"name" koanf:"name"`
	Colors       Palette           `yaml:"colors" koanf:"colors"`
	FontFamily   []string          `yaml:"font_family" koanf:"font_family"`
	FontSize     map[string]string `yaml:"font_size" koanf:"font_size"`
	FontWeight   map[string]int    `yaml:"font_weight" koanf:"font_weight"`
	BorderRadius map[string]string `yaml:"border_radius" koanf:"border_radius"`
	BoxShadow    map[string]string `yaml:"box_shadow" koanf:"box_shadow"`
	Spacing      map[string]string `yaml:"spacing" koanf:"spacing"`
}

// Group names a family of tokens.
type Group string

const (
	GroupColor        Group = "color"
	GroupFontFamily   Group = "font-family"
	GroupFontSize     Group = "font-size"
	GroupFontWeight   Group = "font-weight"
	GroupBorderRadius Group = "radius"
	GroupBoxShadow    Group = "shadow"
	GroupSpacing      Group = "spacing"
)

// Token is one flattened design token.
type Token struct {
	Group Group  `json:"group"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Name is the token's CSS custom property name without the leading dashes.
func (t Token) Name() string {
	return string(t.Group) + "-" + t.Key
}

// Var returns the CSS custom property, e.g. --color-xgrid-blue.
func (t Token) Var() string {
	return "--" + t.Name()
}
