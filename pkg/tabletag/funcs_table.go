package tabletag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/mgrenfell/trellis/pkg/tabular"
)

// defaultTableTmpl is the built-in table template: sortable header links,
// plain body rows, and a pagination footer. Header and row sections defer to
// override templates via include when the call site provides them.
const defaultTableTmpl = `{{define "table.tmpl.html"}}<table class="trellis">
<thead>
{{- if .HeaderTemplate}}{{include .HeaderTemplate .}}{{else}}
<tr>
{{- range $col := .Table.Columns}}
{{- if and $col.Sortable $.Request}}<th><a href="{{querystring $.Request $.SortParam ($.Table.Toggled $col)}}">{{$col.Title}}</a></th>
{{- else}}<th>{{$col.Title}}</th>
{{- end}}
{{- end}}
</tr>
{{- end}}
</thead>
<tbody>
{{- if .RowTemplate}}
{{- range .Table.Rows}}{{include $.RowTemplate .}}{{end}}
{{- else}}
{{- range .Table.Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
{{- end}}
</tbody>
</table>
{{- if gt .Table.Page.TotalPages 1}}
<nav class="trellis-pagination">
{{- if .Table.Page.HasPrev}}<a href="{{querystring $.Request $.PageParam .Table.Page.Prev}}">previous</a>{{end}}
<span>page {{.Table.Page.Number}} of {{.Table.Page.TotalPages}} ({{.Table.Page.TotalRows}} rows)</span>
{{- if .Table.Page.HasNext}}<a href="{{querystring $.Request $.PageParam .Table.Page.Next}}">next</a>{{end}}
</nav>
{{- end}}
{{end}}`

// tableData is the context the table templates render against. Override
// header templates receive the whole struct; override row templates receive
// a single tabular.Row.
type tableData struct {
	Request        *http.Request
	Table          *tabular.View
	HeaderTemplate string
	RowTemplate    string
	SortParam      string
	PageParam      string
}

// renderTable applies ordering and pagination from the request's query
// parameters to the table and renders it. Up to three override template
// names may follow the table: whole-table, header, and row. When rendering
// fails, the configured placeholder is returned unless debug mode is on, in
// which case the error propagates and aborts the surrounding render.
//
// Runs during template execution, which holds the manager's read lock, so
// manager state is read directly here rather than re-locked.
func (tm *TagManager) renderTable(req *http.Request, table *tabular.Table, overrides ...string) (template.HTML, error) {
	out, err := tm.execTable(req, table, overrides)
	if err != nil {
		if tm.config.Debug {
			return "", err
		}
		tm.logger.Error("renderTable failed", "error", err)
		return template.HTML(tm.config.InvalidOutput), nil
	}
	return out, nil
}

func (tm *TagManager) execTable(req *http.Request, table *tabular.Table, overrides []string) (template.HTML, error) {
	if table == nil {
		return "", errors.New("renderTable: expected a table, got nil")
	}
	if len(overrides) > 3 {
		return "", fmt.Errorf("renderTable: at most 3 template overrides (table, header, row), got %d", len(overrides))
	}

	ctx := context.Background()
	data := &tableData{
		Request:   req,
		SortParam: tm.config.SortParam,
		PageParam: tm.config.PageParam,
	}

	if req != nil {
		ctx = req.Context()
		query := req.URL.Query()
		if spec := query.Get(tm.config.SortParam); spec != "" {
			table.SetOrder(spec)
		}
		perPage := table.PerPage()
		if perPage <= 0 {
			perPage = tm.config.DefaultPerPage
		}
		if perPage > 0 {
			table.Paginate(pageNumber(query.Get(tm.config.PageParam)), perPage)
		}
	}

	view, err := table.Compute(ctx)
	if err != nil {
		return "", err
	}
	data.Table = view

	name := tm.config.DefaultTemplate
	if table.TemplateName != "" {
		name = table.TemplateName
	}
	if len(overrides) > 0 && overrides[0] != "" {
		name = overrides[0]
	}
	if len(overrides) > 1 {
		data.HeaderTemplate = overrides[1]
	}
	if len(overrides) > 2 {
		data.RowTemplate = overrides[2]
	}

	var buf bytes.Buffer
	if err = tm.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// include executes a named template from the manager's set and returns its
// output. html/template only accepts constant names in {{template}}, so the
// per-part overrides need this indirection.
//
// Same locking invariant as renderTable.
func (tm *TagManager) include(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tm.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// pageNumber parses the page query parameter. Anything that is not a
// positive integer falls back to page 1.
func pageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
