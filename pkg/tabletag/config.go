package tabletag

// DefaultTableTemplate is the name of the built-in table template. A template
// file with the same name in the manager's template directory replaces it.
const DefaultTableTemplate = "table.tmpl.html"

// TagConfig holds all configuration options for the tag layer.
type TagConfig struct {
	// Debug propagates rendering errors out of renderTable instead of
	// swallowing them, aborting the surrounding template execution.
	Debug bool `json:"debug"`

	// InvalidOutput is emitted in place of the table when rendering fails
	// and Debug is off.
	InvalidOutput string `json:"invalid_output"`

	// DefaultTemplate names the template renderTable uses when neither the
	// table nor the call site picks one.
	DefaultTemplate string `json:"default_template"`

	// SortParam is the query parameter carrying the order spec ("-title").
	SortParam string `json:"sort_param"`

	// PageParam is the query parameter carrying the 1-based page number.
	PageParam string `json:"page_param"`

	// DefaultPerPage is the page size applied when the table does not set
	// its own. Zero disables pagination entirely.
	DefaultPerPage int `json:"default_per_page"`
}

// DefaultConfig returns a TagConfig with safe default values.
// InvalidOutput is empty by default, so failed renders collapse to nothing
// rather than leaking an error marker into the page.
func DefaultConfig() *TagConfig {
	return &TagConfig{
		Debug:           false,
		InvalidOutput:   "",
		DefaultTemplate: DefaultTableTemplate,
		SortParam:       "sort",
		PageParam:       "page",
		DefaultPerPage:  25,
	}
}
