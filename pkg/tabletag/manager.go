package tabletag

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// TagManager is the central controller for the tag layer. It owns the
// template set, the configuration, and the function map, and is responsible
// for loading, parsing, and executing templates in a concurrent-safe manner.
// All methods are concurrent-safe.
type TagManager struct {
	logger         *slog.Logger
	config         *TagConfig
	templates      *template.Template
	cleanTemplates *template.Template
	templateNames  []string
	funcMap        template.FuncMap
	templateDir    string
	mu             sync.RWMutex
}

// NewTagManager creates, initializes, and returns a new TagManager. The
// template directory may be empty, in which case only the built-in table
// template is available. It performs an initial Refresh to load all
// templates.
func NewTagManager(logger *slog.Logger, config *TagConfig, templateDir string) (*TagManager, error) {
	if config == nil {
		config = DefaultConfig()
	}

	tm := &TagManager{
		logger:      logger,
		config:      config,
		templateDir: templateDir,
	}
	tm.funcMap = tm.makeFuncMap()

	if err := tm.Refresh(); err != nil {
		return nil, err
	}

	logger.Info("Tag manager initialized")
	return tm, nil
}

func (tm *TagManager) makeFuncMap() template.FuncMap {
	return template.FuncMap{
		// Query-string construction (from funcs_query.go)
		"querystring":   querystring,
		"withoutParams": withoutParams,

		// Table rendering (from funcs_table.go)
		"renderTable": tm.renderTable,
		"include":     tm.include,
	}
}

// SetConfig applies a new configuration to the TagManager, changing tag
// behavior such as debug mode or the pagination defaults without reloading
// templates.
func (tm *TagManager) SetConfig(config *TagConfig) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.config = config
}

// GetConfig returns a copy of the current configuration.
// This mainly exists for concurrency-safety reasons.
func (tm *TagManager) GetConfig() TagConfig {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return *tm.config
}

// Refresh reloads all templates: first the built-in table template, then any
// *.tmpl.html files from the template directory, which may redefine the
// built-in by using its name. This allows template updates without
// restarting the application.
func (tm *TagManager) Refresh() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	parsed, err := template.New("").Funcs(tm.funcMap).Parse(defaultTableTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse built-in table template: %w", err)
	}
	names := []string{DefaultTableTemplate}

	if tm.templateDir != "" {
		filePattern := filepath.Join(tm.templateDir, "*.tmpl.html")
		tm.logger.Info("Loading template files...", "pattern", filePattern)

		loaded, err := parsed.ParseGlob(filePattern)
		if err != nil {
			if !strings.Contains(err.Error(), "pattern matches no files") {
				tm.logger.Error("failed to parse template files", "error", err)
				return err
			}
			tm.logger.Warn("No template files found matching pattern", "pattern", filePattern)
		} else {
			parsed = loaded
			names = names[:0]
			for _, t := range parsed.Templates() {
				// The root template has no name. Skip it.
				if strings.Contains(t.Name(), ".tmpl.html") {
					names = append(names, t.Name())
				}
			}
		}
	}

	tm.templates = parsed
	tm.templateNames = names
	tm.logger.Info("Loaded templates", "count", len(names))

	// Create a clean clone for string executions after all parsing is complete.
	tm.cleanTemplates, err = tm.templates.Clone()
	if err != nil {
		tm.logger.Error("failed to create a clean clone of templates", "error", err)
		return err
	}

	return nil
}

// Execute renders a specific template by name, writing the output to the
// provided io.Writer. The data argument is passed to the template; pages
// that use the tags are expected to carry the current *http.Request in it.
func (tm *TagManager) Execute(w io.Writer, name string, data interface{}) error {
	if name == "" {
		return nil
	}
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.templates.ExecuteTemplate(w, name, data)
}

// GetTemplateNames returns a slice of the loaded template names.
// This mainly exists for concurrency-safety reasons.
func (tm *TagManager) GetTemplateNames() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	names := make([]string, len(tm.templateNames))
	copy(names, tm.templateNames)
	return names
}

// GetTemplateDir returns the template dir that the TagManager uses.
// This mainly exists for concurrency-safety reasons as well.
func (tm *TagManager) GetTemplateDir() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.templateDir
}

// ExecuteTemplateString parses and executes a raw template string using the
// manager's function map. This is ideal for testing or previewing templates
// without saving them to disk.
func (tm *TagManager) ExecuteTemplateString(w io.Writer, content string, data interface{}) error {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	// Clone the clean, unexecuted template set to avoid race conditions and
	// execution state issues.
	tempSet, err := tm.cleanTemplates.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone clean templates for string execution: %w", err)
	}

	t, err := tempSet.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse string template: %w", err)
	}

	return t.Execute(w, data)
}
