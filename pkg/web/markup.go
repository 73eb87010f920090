// Package web renders the departure board as HTML fragments and serves them
// as a self-refreshing page.
package web

import (
	"html/template"
	"strings"

	"pidboard/pkg/board"
)

var (
	departureTmpl = template.Must(template.New("departure").Parse(
		`<div class="departure-item">` +
			`<span class="line-number line-{{.Line}}">{{.Line}}</span>` +
			`<span class="destination">{{.Destination}}</span>` +
			`<span class="time">{{.Status}}</span>` +
			`</div>`))

	infoTextTmpl = template.Must(template.New("infotext").Parse(
		`{{range .}}<p class="alert-info">{{.}}</p>{{end}}`))

	noticeTmpl = template.Must(template.New("notice").Parse(`<p>{{.}}</p>`))

	errorTmpl = template.Must(template.New("error").Parse(`<p class="error" style="color: red;">{{.}}</p>`))
)

func execute(t *template.Template, data interface{}) template.HTML {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		// Only reachable through a template bug; show it instead of a blank board
		return template.HTML(template.HTMLEscapeString(err.Error()))
	}
	return template.HTML(sb.String())
}

// DepartureHTML renders one row as a departure-item element.
func DepartureHTML(row board.Row) template.HTML {
	return execute(departureTmpl, row)
}

// BoardHTML renders all rows in order, or the no-departures notice.
func BoardHTML(b board.Board) template.HTML {
	if b.Empty() {
		return execute(noticeTmpl, board.NoDeparturesNotice)
	}

	var sb strings.Builder
	for _, row := range b.Rows {
		sb.WriteString(string(DepartureHTML(row)))
	}
	return template.HTML(sb.String())
}

// InfoTextsHTML renders one alert paragraph per line. No lines, no markup.
func InfoTextsHTML(lines []string) template.HTML {
	if len(lines) == 0 {
		return ""
	}
	return execute(infoTextTmpl, lines)
}

// ErrorHTML renders the failure message that replaces the board.
func ErrorHTML(message string) template.HTML {
	return execute(errorTmpl, message)
}
