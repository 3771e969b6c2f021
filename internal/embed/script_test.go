package embed

import (
	"strings"
	"testing"
)

func TestScriptDefaults(t *testing.T) {
	js, err := Script(DefaultOptions())
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	src := string(js)

	for _, want := range []string{
		`containerId: "xgrid-ambassador-map"`,
		`fallbackOrigin: "https://main.d3d9zn9ueor3c9.amplifyapp.com"`,
		`width: "100%"`,
		`height: "800px"`,
		`title: "XGrid Ambassador Map"`,
		"window.XGridAmbassadorMap = {",
		"document.readyState === 'loading'",
		"DOMContentLoaded",
		"XGrid Ambassador Map widget initialized successfully",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("script missing %q", want)
		}
	}

	if strings.Contains(src, "getElementsByTagName('script')") {
		t.Error("script must not locate its anchor by scanning script tags")
	}
}

func TestScriptCallerAnchorReplacesScriptTag(t *testing.T) {
	js, err := Script(DefaultOptions())
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	src := string(js)

	public := strings.Index(src, "init: function (options)")
	if public < 0 {
		t.Fatal("script has no public init")
	}
	body := src[public:]

	inherit := strings.Index(body, "merged[k] = scriptOptions[k];")
	reset := strings.Index(body, "if (options && (options.anchor || options.anchorId)) {")
	override := strings.Index(body, "merged[k] = options[k];")
	if inherit < 0 || reset < 0 || override < 0 {
		t.Fatalf("public init is missing a merge step (inherit=%d reset=%d override=%d)", inherit, reset, override)
	}
	if !(inherit < reset && reset < override) {
		t.Errorf("caller anchor must clear the inherited anchor between the two merges (inherit=%d reset=%d override=%d)", inherit, reset, override)
	}
	if !strings.Contains(body[reset:override], "merged.anchor = null;") {
		t.Error("inherited script-tag anchor is not cleared")
	}
}

func TestScriptEscapesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = `Map</script><script>alert("x")`
	js, err := Script(opts)
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if strings.Contains(string(js), "</script>") {
		t.Error("title was not escaped")
	}
	if !strings.Contains(string(js), `\u003c/script\u003e`) {
		t.Error("expected unicode-escaped angle brackets")
	}
}

func TestScriptIsDeterministic(t *testing.T) {
	a, err := Script(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Script(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("empty options should render the same script as the defaults")
	}
}

func TestSnippet(t *testing.T) {
	out, err := Snippet("https://maps.example.com/embed.js", DefaultOptions())
	if err != nil {
		t.Fatalf("Snippet: %v", err)
	}

	want := `<div id="xgrid-ambassador-map" style="width: 100%; height: 800px">` +
		`<iframe src="https://maps.example.com" style="width: 100%; height: 100%; border: none; display: block" ` +
		`frameborder="0" allowfullscreen="true" title="XGrid Ambassador Map"></iframe></div>` + "\n" +
		`<script src="https://maps.example.com/embed.js"></script>` + "\n"
	if out != want {
		t.Errorf("snippet mismatch:\n got: %s\nwant: %s", out, want)
	}
}

func TestSnippetFallbackOrigin(t *testing.T) {
	out, err := Snippet("/embed.js", DefaultOptions())
	if err != nil {
		t.Fatalf("Snippet: %v", err)
	}
	if !strings.Contains(out, `src="`+DefaultFallbackOrigin+`"`) {
		t.Errorf("relative script URL should fall back, got %s", out)
	}
}
