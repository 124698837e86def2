package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mgrenfell/trellis/pkg/tabletag"
	"github.com/mgrenfell/trellis/pkg/tabular"
)

// defaultCatalogTmpl is written into the template directory on first run so
// the demo works out of the box and there is a file to edit while the
// hot-reload watcher is running.
const defaultCatalogTmpl = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<p><a href="{{withoutParams .Request "sort" "page"}}">reset view</a></p>
{{renderTable .Request .Table}}
</body>
</html>
`

// Server is the demo catalog server. It renders a single sqlite-backed table
// through the trellis tags.
type Server struct {
	config *Config
	db     *sql.DB
	logger *slog.Logger
	tm     *tabletag.TagManager
	source *tabular.SQLSource
	mux    *http.ServeMux
}

// NewServer wires the tag manager and the catalog row source and registers
// the routes.
func NewServer(config *Config, logger *slog.Logger, db *sql.DB) (*Server, error) {
	templateDir := filepath.Join(config.Server.DataDir, "templates")
	if err := ensureTemplateDir(templateDir); err != nil {
		return nil, err
	}

	tm, err := tabletag.NewTagManager(logger, config.Tags, templateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag manager: %w", err)
	}

	source, err := tabular.NewSQLSource(db, "books", "title", "author", "year")
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog source: %w", err)
	}

	server := &Server{
		config: config,
		db:     db,
		logger: logger,
		tm:     tm,
		source: source,
		mux:    http.NewServeMux(),
	}
	server.mux.HandleFunc("/", server.handleCatalog)

	return server, nil
}

// Close releases the server's prepared statements. The database handle is
// owned by the caller.
func (s *Server) Close() error {
	return s.source.Close()
}

// ensureTemplateDir creates the template directory and drops the default
// catalog page into it when missing.
func ensureTemplateDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create template dir: %w", err)
	}
	path := filepath.Join(dir, "catalog.tmpl.html")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(path, []byte(defaultCatalogTmpl), 0644); err != nil {
		return fmt.Errorf("failed to write default catalog template: %w", err)
	}
	return nil
}

// newCatalogTable builds the per-request table. Tables carry transient
// sort/page state, so they are never shared across requests.
func (s *Server) newCatalogTable() *tabular.Table {
	return tabular.New(s.source,
		tabular.Column{Name: "title", Sortable: true},
		tabular.Column{Name: "author", Sortable: true},
		tabular.Column{Name: "year", Title: "Published", Sortable: true},
	)
}

type catalogPage struct {
	Request *http.Request
	Table   *tabular.Table
	Title   string
}

// handleCatalog renders the catalog page. Rendering goes through a buffer so
// a failed render produces a clean 500 instead of a half-written page.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := catalogPage{
		Request: r,
		Table:   s.newCatalogTable(),
		Title:   "Catalog",
	}

	var buf bytes.Buffer
	if err := s.tm.Execute(&buf, "catalog.tmpl.html", data); err != nil {
		s.logger.Error("Failed to render catalog page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
