package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tokens flattens the theme into an ordered token list. The order is stable
// for a given theme: palette order for colors, ascending size for font sizes
// and weights, key order for everything else.
func (t *Theme) Tokens() []Token {
	var out []Token

	c := t.Colors
	for _, kv := range [][2]string{
		{"black", c.Black},
		{"white", c.White},
		{"gray-light", c.Gray.Light},
		{"gray-medium", c.Gray.Medium},
		{"gray-dark", c.Gray.Dark},
		{"blue", c.Blue},
		{"green", c.Green},
		{"red", c.Red},
	} {
		out = append(out, Token{Group: GroupColor, Key: t.Name + "-" + kv[0], Value: kv[1]})
	}

	out = append(out, Token{Group: GroupFontFamily, Key: "sans", Value: fontStack(t.FontFamily)})

	for _, k := range byLength(t.FontSize) {
		out = append(out, Token{Group: GroupFontSize, Key: k, Value: t.FontSize[k]})
	}

	weights := make([]string, 0, len(t.FontWeight))
	for k := range t.FontWeight {
		weights = append(weights, k)
	}
	sort.Slice(weights, func(i, j int) bool {
		wi, wj := t.FontWeight[weights[i]], t.FontWeight[weights[j]]
		if wi != wj {
			return wi < wj
		}
		return weights[i] < weights[j]
	})
	for _, k := range weights {
		out = append(out, Token{Group: GroupFontWeight, Key: k, Value: strconv.Itoa(t.FontWeight[k])})
	}

	for _, k := range sortedKeys(t.BorderRadius) {
		out = append(out, Token{Group: GroupBorderRadius, Key: k, Value: t.BorderRadius[k]})
	}
	for _, k := range sortedKeys(t.BoxShadow) {
		out = append(out, Token{Group: GroupBoxShadow, Key: k, Value: t.BoxShadow[k]})
	}
	for _, k := range sortedKeys(t.Spacing) {
		out = append(out, Token{Group: GroupSpacing, Key: k, Value: t.Spacing[k]})
	}

	return out
}

// utilityClass maps a token group to the class prefix and CSS property of
// the generated utility classes.
var utilityClass = map[Group][]struct {
	prefix   string
	property string
}{
	GroupColor: {
		{"text", "color"},
		{"bg", "background-color"},
		{"border", "border-color"},
	},
	GroupFontFamily:   {{"font", "font-family"}},
	GroupFontSize:     {{"text", "font-size"}},
	GroupFontWeight:   {{"font", "font-weight"}},
	GroupBorderRadius: {{"rounded", "border-radius"}},
	GroupBoxShadow:    {{"shadow", "box-shadow"}},
	GroupSpacing: {
		{"p", "padding"},
		{"m", "margin"},
		{"gap", "gap"},
	},
}

// CSS renders the theme as custom properties on :root followed by one
// utility class per token and property.
func (t *Theme) CSS() string {
	tokens := t.Tokens()

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tok := range tokens {
		fmt.Fprintf(&b, "  %s: %s;\n", tok.Var(), tok.Value)
	}
	b.WriteString("}\n")

	for _, tok := range tokens {
		for _, u := range utilityClass[tok.Group] {
			fmt.Fprintf(&b, ".%s-%s { %s: var(%s); }\n", u.prefix, tok.Key, u.property, tok.Var())
		}
	}
	return b.String()
}

// document is the JSON shape served at /theme.json.
type document struct {
	Name   string  `json:"name"`
	Tokens []Token `json:"tokens"`
}

// JSON renders the token table.
func (t *Theme) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Name: t.Name, Tokens: t.Tokens()}); err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	return buf.Bytes(), nil
}

// fontStack joins family names into a CSS font-family value, quoting names
// that contain spaces.
func fontStack(families []string) string {
	parts := make([]string, len(families))
	for i, f := range families {
		f = strings.TrimSpace(f)
		if strings.ContainsAny(f, " \t") {
			f = strconv.Quote(f)
		}
		parts[i] = f
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// byLength orders keys by their numeric length value, then by key.
func byLength(m map[string]string) []string {
	keys := sortedKeys(m)
	sort.SliceStable(keys, func(i, j int) bool {
		return lengthValue(m[keys[i]]) < lengthValue(m[keys[j]])
	})
	return keys
}

// lengthValue extracts the leading number of a CSS length. Units are
// ignored; themes are expected to use one unit per group.
func lengthValue(v string) float64 {
	end := 0
	for end < len(v) && (v[end] == '.' || (v[end] >= '0' && v[end] <= '9')) {
		end++
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
