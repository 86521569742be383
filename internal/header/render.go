package header

import (
	"bytes"
	"html/template"
)

// Separator is placed between breadcrumbs.
const Separator = "›"

// CrumbView is a breadcrumb prepared for display.
type CrumbView struct {
	Label string `json:"label"`
	// Path is kept for every crumb that has one, the current crumb included.
	Path string `json:"path,omitempty"`
	// Current marks the last crumb, which is emphasized.
	Current bool `json:"current"`
}

// View is what the application shell draws. When Visible is false nothing
// is drawn.
type View struct {
	Visible   bool        `json:"visible"`
	Heading   string      `json:"title,omitempty"`
	Crumbs    []CrumbView `json:"breadcrumbs,omitempty"`
	Separator string      `json:"separator,omitempty"`
	Badge     string      `json:"state_badge,omitempty"`
}

// Render turns a descriptor into a View. The badge is shown only when the
// descriptor asks for it and the user has a preferred state.
func Render(d RouteDescriptor, preferredState string) View {
	if d.IsEmpty() {
		return View{}
	}

	v := View{Visible: true, Heading: d.Title}
	if n := len(d.Breadcrumbs); n > 0 {
		v.Separator = Separator
		v.Crumbs = make([]CrumbView, n)
		for i, c := range d.Breadcrumbs {
			v.Crumbs[i] = CrumbView{Label: c.Label, Path: c.Path, Current: i == n-1}
		}
	}
	if d.ShowState && preferredState != "" {
		v.Badge = preferredState
	}
	return v
}

var headerTemplate = template.Must(template.New("header").Parse(
	`<header class="page-header">` +
		`{{if .Crumbs}}<nav class="breadcrumbs">` +
		`{{range $i, $c := .Crumbs}}{{if $i}} <span class="sep">{{$.Separator}}</span> {{end}}` +
		`{{if $c.Current}}<strong>{{$c.Label}}</strong>` +
		`{{else if $c.Path}}<a href="{{$c.Path}}">{{$c.Label}}</a>` +
		`{{else}}<span>{{$c.Label}}</span>{{end}}{{end}}</nav>` +
		`{{else}}<h1>{{.Heading}}</h1>{{end}}` +
		`{{if .Badge}} <span class="state-badge">{{.Badge}}</span>{{end}}` +
		`</header>`))

// HTML renders the view as an HTML fragment. Invisible views render as "".
func (v View) HTML() (template.HTML, error) {
	if !v.Visible {
		return "", nil
	}
	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, v); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
