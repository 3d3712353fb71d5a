package ast

import gotok "go/token"

// Table is a header Row plus body Rows. Each Row may have more cells than
// the header; excess cells are allowed and rendered as-is.
type Table struct {
	Header Row
	Rows   []Row

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewTable(header Row) *Table { return &Table{Header: header} }

func (t *Table) AddRow(r Row) { t.Rows = append(t.Rows, r) }

func (t *Table) Pos() gotok.Pos { return t.StartPos }
func (t *Table) End() gotok.Pos { return t.EndPos }
func (*Table) elementNode()     {}
func (*Table) blockNode()       {}

// Row is one line of a Table, `| cell | cell | ... |`.
type Row struct {
	Cells []Cell
}

func (r *Row) AddCell(c Cell) { r.Cells = append(r.Cells, c) }

// Cell is one `|`-delimited table cell.
type Cell struct {
	Text Line
}
