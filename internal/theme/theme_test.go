package theme

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th.Name != "xgrid" {
		t.Errorf("name = %q, want xgrid", th.Name)
	}
	if th.Colors.Blue != "#0066CC" {
		t.Errorf("blue = %q, want #0066CC", th.Colors.Blue)
	}
	if th.Colors.Gray.Dark != "#666666" {
		t.Errorf("gray.dark = %q, want #666666", th.Colors.Gray.Dark)
	}
	if th.FontSize["3xl"] != "32px" {
		t.Errorf("font_size.3xl = %q, want 32px", th.FontSize["3xl"])
	}
	if th.FontWeight["semibold"] != 600 {
		t.Errorf("font_weight.semibold = %d, want 600", th.FontWeight["semibold"])
	}
	if th.BoxShadow["xgrid-hover"] != "0 4px 8px rgba(0,0,0,0.15)" {
		t.Errorf("box_shadow.xgrid-hover = %q", th.BoxShadow["xgrid-hover"])
	}
	if err := th.Validate(); err != nil {
		t.Errorf("default theme should validate, got %v", err)
	}
}

func TestDefaultReturnsFreshMaps(t *testing.T) {
	a := Default()
	a.FontSize["xs"] = "10px"
	if b := Default(); b.FontSize["xs"] != "14px" {
		t.Errorf("mutating one default leaked into another: %q", b.FontSize["xs"])
	}
}

func TestTokensOrder(t *testing.T) {
	tokens := Default().Tokens()

	if tokens[0].Name() != "color-xgrid-black" {
		t.Errorf("first token = %q, want color-xgrid-black", tokens[0].Name())
	}

	var sizes []string
	for _, tok := range tokens {
		if tok.Group == GroupFontSize {
			sizes = append(sizes, tok.Key)
		}
	}
	want := []string{"sm", "xs", "base", "lg", "xl", "2xl", "3xl"}
	if strings.Join(sizes, ",") != strings.Join(want, ",") {
		t.Errorf("font sizes = %v, want %v", sizes, want)
	}

	// Repeated calls produce the same order.
	again := Default().Tokens()
	for i := range tokens {
		if tokens[i] != again[i] {
			t.Fatalf("token %d differs between calls: %+v vs %+v", i, tokens[i], again[i])
		}
	}
}

func TestCSS(t *testing.T) {
	css := Default().CSS()

	for _, want := range []string{
		":root {",
		"--color-xgrid-blue: #0066CC;",
		"--color-xgrid-gray-light: #F5F5F5;",
		`--font-family-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;`,
		"--font-weight-semibold: 600;",
		"--shadow-xgrid-hover: 0 4px 8px rgba(0,0,0,0.15);",
		".bg-xgrid-gray-light { background-color: var(--color-xgrid-gray-light); }",
		".text-2xl { font-size: var(--font-size-2xl); }",
		".rounded-xgrid { border-radius: var(--radius-xgrid); }",
		".p-xgrid { padding: var(--spacing-xgrid); }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q", want)
		}
	}
}

func TestJSON(t *testing.T) {
	data, err := Default().JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc struct {
		Name   string  `json:"name"`
		Tokens []Token `json:"tokens"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Name != "xgrid" {
		t.Errorf("name = %q", doc.Name)
	}
	if len(doc.Tokens) != len(Default().Tokens()) {
		t.Errorf("tokens = %d, want %d", len(doc.Tokens), len(Default().Tokens()))
	}
}

func TestLoadMissingFile(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for a missing file: %v", err)
	}
	if th.Colors.Red != "#DC3545" {
		t.Errorf("expected default red, got %q", th.Colors.Red)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	content := `
colors:
  blue: "#1144AA"
font_size:
  4xl: 40px
spacing:
  xgrid: 12px
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Colors.Blue != "#1144AA" {
		t.Errorf("blue = %q, want #1144AA", th.Colors.Blue)
	}
	if th.Colors.Green != "#28A745" {
		t.Errorf("green should keep its default, got %q", th.Colors.Green)
	}
	if th.FontSize["4xl"] != "40px" {
		t.Errorf("font_size.4xl = %q, want 40px", th.FontSize["4xl"])
	}
	if th.FontSize["base"] != "16px" {
		t.Errorf("font_size.base should keep its default, got %q", th.FontSize["base"])
	}
	if th.Spacing["xgrid"] != "12px" {
		t.Errorf("spacing.xgrid = %q, want 12px", th.Spacing["xgrid"])
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	if err := os.WriteFile(path, []byte("colors:\n  red: crimson\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")

	original := Default()
	original.Colors.Black = "#111111"
	original.BorderRadius["pill"] = "999px"
	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Colors.Black != "#111111" {
		t.Errorf("black = %q", loaded.Colors.Black)
	}
	if loaded.BorderRadius["pill"] != "999px" {
		t.Errorf("radius.pill = %q", loaded.BorderRadius["pill"])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Theme)
	}{
		{"bad name", func(th *Theme) { th.Name = "X Grid" }},
		{"bad color", func(th *Theme) { th.Colors.Gray.Medium = "E0E0E0" }},
		{"empty font family", func(th *Theme) { th.FontFamily = nil }},
		{"blank font", func(th *Theme) { th.FontFamily = []string{"Roboto", " "} }},
		{"unitless size", func(th *Theme) { th.FontSize["base"] = "16" }},
		{"bad spacing", func(th *Theme) { th.Spacing["xgrid"] = "wide" }},
		{"zero weight", func(th *Theme) { th.FontWeight["normal"] = 0 }},
		{"shadow injection", func(th *Theme) { th.BoxShadow["xgrid"] = "none; color: red" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Default()
			tt.mutate(th)
			if err := th.Validate(); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
