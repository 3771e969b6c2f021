package site

// pageTemplate is the html/template for the landing page.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Page.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Page.Title}}</title>
  <meta name="description" content="{{.Page.Description}}">
  <style>
{{.ThemeCSS}}
{{.LayoutCSS}}
  </style>
</head>
<body class="font-sans">
  <main class="page">
    <div class="wrap">
      <h1 class="headline">{{.Page.Heading}}</h1>
      <p class="lead text-xl">{{.Page.Lead}}</p>

      <section class="card bg-xgrid-white rounded-xgrid shadow-xgrid">
        <h2 class="text-2xl font-semibold">{{.Page.Phase}}</h2>
        <div class="milestones">
{{- range .Page.Milestones}}
          <div class="milestone bg-xgrid-gray-light rounded-xgrid">
            <h3 class="font-semibold">{{.Icon}} {{.Title}}</h3>
            <p class="text-sm">{{.Detail}}</p>
          </div>
{{- end}}
        </div>
      </section>

      <section class="notice rounded-xgrid">
        <h3 class="text-lg font-semibold">{{.Page.StatusTitle}}</h3>
        {{.StatusHTML}}
      </section>
    </div>
  </main>
{{- if .ReloadPath}}
  <script>
  (function () {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + location.host + {{.ReloadPath}});
    ws.onmessage = function (ev) {
      try {
        if (JSON.parse(ev.data).type === 'reload') { location.reload(); }
      } catch (e) {}
    };
  })();
  </script>
{{- end}}
</body>
</html>
`

// layoutCSS positions the page. Colors, type and spacing come from the
// theme custom properties.
const layoutCSS = `*, *::before, *::after { box-sizing: border-box; }
body { margin: 0; color: var(--color-xgrid-black); font-size: var(--font-size-base); }
.page { min-height: 100vh; background: linear-gradient(to bottom, var(--color-xgrid-gray-light), var(--color-xgrid-white)); }
.wrap { max-width: 80rem; margin: 0 auto; padding: 4rem 1rem; text-align: center; }
.headline { font-size: 3rem; font-weight: 700; margin: 0 0 1.5rem; }
.lead { max-width: 42rem; margin: 0 auto 2rem; color: var(--color-xgrid-gray-dark); }
.card { max-width: 56rem; margin: 0 auto 3rem; padding: calc(var(--spacing-xgrid) * 4); }
.card h2 { margin: 0 0 1.5rem; }
.milestones { display: grid; gap: calc(var(--spacing-xgrid) * 3); text-align: left; }
@media (min-width: 768px) { .milestones { grid-template-columns: repeat(3, 1fr); } }
.milestone { padding: calc(var(--spacing-xgrid) * 2); }
.milestone h3 { margin: 0 0 0.5rem; font-size: var(--font-size-base); }
.milestone p { margin: 0; color: var(--color-xgrid-gray-dark); }
.notice { max-width: 42rem; margin: 0 auto; padding: calc(var(--spacing-xgrid) * 3); border: 1px solid var(--color-xgrid-blue); color: var(--color-xgrid-blue); }
.notice h3 { margin: 0 0 0.5rem; }
.notice p { margin: 0; }
`
