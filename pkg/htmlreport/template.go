package htmlreport

import (
	_ "embed"
	"html/template"
)

//go:embed style/default.css
var defaultCSS string

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateText))

const reportTemplateText = `<!DOCTYPE HTML>
<html lang="en">
<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8">
  <style>
  {{.Style}}
  </style>
</head>
<body>
<h1><u>{{.Title}}</u></h1>

<small>
  Report generated on {{.Date}} at {{.Time}} using <a href="https://github.com/dkoosis/lintreport">lintreport</a>
</small>

<h2>
  <span>Score:</span>
  <span class="score"> {{.Score}} </span>
  <span> / 10 </span>
</h2>
{{if .Delta}}<small class="delta">previous run: {{.Previous}} / 10, {{.Delta}}</small>
{{end}}
<ul>
{{range .Summary}}{{if .Linked}}<li><a href="#{{.Module}}">{{.Module}}</a> ({{.Count}})</li>
{{else}}<li>{{.Module}} (0)</li>
{{end}}{{end}}</ul>
{{range .Sections}}
<br>
<hr>
<section>
<h2>
  <span>Module:</span>
  <span id="{{.Module}}"> <code>{{.Module}} ({{.Count}})</code> </span>
</h2>
<hr>
<table class="breakdown"><tr>
<td>
<table>
<thead><tr><th>symbol</th><th># msg</th></tr></thead>
<tbody>
{{range .BySymbol}}<tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{end}}</tbody>
</table>
</td>
<td>
<table>
<thead><tr><th>type</th><th># msg</th></tr></thead>
<tbody>
{{range .ByCategory}}<tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{end}}</tbody>
</table>
</td>
</tr></table>
<table class="messages">
<thead><tr><th>line</th><th>column</th><th>symbol</th><th>type</th><th>obj</th><th>message</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Line}}</td><td>{{.Column}}</td><td>{{.Symbol}}</td><td>{{.Category}}</td><td>{{.Obj}}</td><td>{{.Message}}</td></tr>
{{end}}</tbody>
</table>
</section>
{{end}}
</body>
</html>
`
