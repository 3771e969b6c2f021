package embed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"
)

// GlobalName is the window property the script exposes its init function on.
const GlobalName = "XGridAmbassadorMap"

//go:embed embed.js.tmpl
var scriptSource string

var scriptTemplate = template.Must(template.New("embed.js").Funcs(template.FuncMap{
	"jsstr": jsString,
}).Parse(scriptSource))

// scriptData is what the template sees.
type scriptData struct {
	Options
	Global string
}

// Script renders the browser embed script for opts. Anchor, AnchorID and
// ScriptSrc are ignored: in the browser they come from the script tag.
func Script(opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, scriptData{Options: opts, Global: GlobalName}); err != nil {
		return nil, fmt.Errorf("rendering embed script: %w", err)
	}
	return buf.Bytes(), nil
}

// jsString encodes s as a JavaScript string literal. encoding/json escapes
// <, > and & so the literal cannot close a surrounding script element.
func jsString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
