package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

const (
	widgetTemplate  = "widget"
	pageTemplate    = "page"
	landingTemplate = "landing"
)

// PageData is the full document around one widget.
type PageData struct {
	View          calendar.View
	Language      string
	Selected      string
	SelectedLabel string
}

type Renderer struct {
	tmpl     *template.Template
	basePath string
}

// New parses the embedded templates. Widget forms post to
// basePath/<id>/<action>.
func New(basePath string) (*Renderer, error) {
	r := &Renderer{basePath: strings.TrimSuffix(basePath, "/")}

	tmpl, err := template.New("base").Funcs(r.funcs()).ParseFS(templateFiles, "templates/*.gohtml")
	if err != nil {
		return nil, errors.WrapFail(err, "parse templates")
	}

	r.tmpl = tmpl
	return r, nil
}

// LandingData is the entry page. Its only form posts to Action, which
// mounts a widget.
type LandingData struct {
	Title    string
	Language string
	Action   string
}

func (r *Renderer) Landing(w io.Writer, data LandingData) error {
	return r.execute(w, landingTemplate, data)
}

func (r *Renderer) Widget(w io.Writer, v calendar.View) error {
	return r.execute(w, widgetTemplate, v)
}

func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.execute(w, pageTemplate, data)
}

// execute renders into a buffer first so a failing template never leaves
// half a document in w.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return errors.WrapFailf(err, "execute template %q", name)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"isoDate": func(t time.Time) string {
			return t.Format(calendar.DateLayout)
		},
		"isMode": func(v calendar.View, mode string) bool {
			return v.Mode.String() == mode
		},
		"cellClass": cellClass,
		// style comes from host configuration, not from users
		"safeCSS": func(s string) template.CSS {
			return template.CSS(s)
		},
		"actionURL": r.actionURL,
	}
}

func (r *Renderer) actionURL(id, action, key, value string) string {
	q := url.Values{key: []string{value}}
	return r.basePath + "/" + url.PathEscape(id) + "/" + action + "?" + q.Encode()
}

func cellClass(c calendar.DayCell) string {
	classes := []string{"calendar__cell"}
	if c.IsToday {
		classes = append(classes, "is-today")
	}
	if !c.IsCurrentMonth {
		classes = append(classes, "is-outside")
	}
	return strings.Join(classes, " ")
}
