package web

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"pidboard/pkg/dlog"

	"github.com/gorilla/mux"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Server exposes an HTMLSink over HTTP
type Server struct {
	sink   *HTMLSink
	title  string
	loc    *time.Location
	logger *dlog.Logger
}

type pageData struct {
	Title     string
	InfoTexts template.HTML
	Board     template.HTML
	Updated   string
}

func NewServer(sink *HTMLSink, stopName string, loc *time.Location, logger *dlog.Logger) *Server {
	if logger == nil {
		logger = dlog.Discard()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Server{
		sink:   sink,
		title:  cases.Title(language.Czech).String(stopName),
		loc:    loc,
		logger: logger,
	}
}

// RegisterRoutes registers the page and its two fragments
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", s.handlePage).Methods("GET")
	r.HandleFunc("/board", s.handleBoard).Methods("GET")
	r.HandleFunc("/infotexts", s.handleInfoTexts).Methods("GET")
}

// Handler returns a router with all routes and request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)
	r.Use(s.loggingMiddleware)
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:     s.title,
		InfoTexts: s.sink.InfoTexts(),
		Board:     s.sink.Board(),
	}
	if updated := s.sink.UpdatedAt(); !updated.IsZero() {
		data.Updated = updated.In(s.loc).Format("15:04:05")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Printf("failed to render page: %v", err)
	}
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.writeFragment(w, s.sink.Board())
}

func (s *Server) handleInfoTexts(w http.ResponseWriter, r *http.Request) {
	s.writeFragment(w, s.sink.InfoTexts())
}

func (s *Server) writeFragment(w http.ResponseWriter, html template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(html)); err != nil {
		s.logger.Debugf("failed to write fragment: %v", err)
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

var pageTmpl = template.Must(template.New("page").Parse(strings.TrimSpace(`
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="5">
<title>{{.Title}} - Departures</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#1a1a2e;color:#eee;margin:0}
h1{font-size:18px;padding:12px 16px;margin:0;background:#16213e}
.alert-info{background:#f5c518;color:#1a1a2e;padding:8px 16px;margin:0}
.departure-item{display:flex;gap:12px;padding:10px 16px;border-bottom:1px solid rgba(255,255,255,.08)}
.line-number{background:#0f3460;color:#e94560;font-weight:700;min-width:36px;text-align:center;border-radius:4px}
.destination{flex:1}
.time{font-weight:700}
.updated{font-size:12px;opacity:.6;padding:8px 16px}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="info-texts">{{.InfoTexts}}</div>
<div id="departure-board">{{.Board}}</div>
{{if .Updated}}<div class="updated">Updated {{.Updated}}</div>{{end}}
</body>
</html>
`)))
