package ast

import gotok "go/token"

// List is an ordered or unordered list of ListItems. Ordered-ness is
// decided once, from the first item's bullet character; mixed bullets
// within a single list are not re-checked per item (an observed legacy
// behavior, preserved as-is).
type List struct {
	Ordered bool
	Items   []*ListItem

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewList() *List { return &List{} }

func (l *List) AddItem(item *ListItem) { l.Items = append(l.Items, item) }

func (l *List) Pos() gotok.Pos { return l.StartPos }
func (l *List) End() gotok.Pos { return l.EndPos }
func (*List) elementNode()     {}
func (*List) blockNode()       {}

// ListItem is one entry in a List. Level is the leading-whitespace count
// observed before the bullet; every child has a strictly greater Level
// than its parent. Ordered is copied from the owning List at parse time
// and used only by the renderer to decide a nested list's tag: a
// ListItem's own children render as <ol> or <ul> based on the *first
// child's* Ordered flag, not the parent's — an observed legacy behavior
// preserved for compatibility (see render/html).
type ListItem struct {
	Text     Line
	Level    uint16
	Ordered  bool
	Children []*ListItem

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewListItem(text Line, level uint16, ordered bool) *ListItem {
	return &ListItem{Text: text, Level: level, Ordered: ordered}
}

func (i *ListItem) AddChild(child *ListItem) { i.Children = append(i.Children, child) }

func (i *ListItem) Pos() gotok.Pos { return i.StartPos }
func (i *ListItem) End() gotok.Pos { return i.EndPos }
