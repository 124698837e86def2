/*
Package tabular provides the table model consumed by the trellis template
tags: column definitions, row sources, ordering and pagination.

A Table ties a RowSource to a list of Columns. Ordering and pagination are
transient display state applied per request; Compute resolves them into an
immutable View that templates can iterate without touching the source again.

Two sources ship with the package: SliceSource for in-memory data and
SQLSource, which pushes ordering and windowing down into SQL via database/sql.
Anything else can participate by implementing RowSource.
*/
package tabular
