/*
Package tabletag provides the trellis template tags: query-string URL
construction from the current request and rendering of tabular data with
sorting and pagination, all as html/template functions.

A TagManager owns the template set and the function map. Host applications
load their page templates through it and call the tags from those templates:

	{{querystring .Request "page" 2}}          -> "?page=2&sort=title"
	{{withoutParams .Request "page"}}          -> "?sort=title"
	{{renderTable .Request .Table}}            -> the rendered table widget
	{{renderTable .Request .Table "t" "h" "r"}} -> with template overrides

renderTable reads the sort and page query parameters off the request, applies
them to the table, and delegates to the table template. Failures are replaced
with a configured placeholder string unless debug mode is enabled, in which
case they propagate and abort the render.
*/
package tabletag
