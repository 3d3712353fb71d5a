package ast

// WalkStatus controls how Walk proceeds after a Walker call.
type WalkStatus int

const (
	WalkContinue     WalkStatus = iota // descend into children
	WalkSkipChildren                   // don't descend into this node's children
	WalkStop                          // stop walking immediately
)

// Walker is called on every node during a Walk, once on entering (before
// its children) and once on leaving (after).
type Walker = func(n Node, isEntering bool) (WalkStatus, error)

// Walk performs a depth-first traversal of the tree rooted at n.
func Walk(n Node, w Walker) error {
	_, err := walk(n, w)
	return err
}

func walk(n Node, w Walker) (WalkStatus, error) {
	if n == nil {
		return WalkContinue, nil
	}
	st, err := w(n, true)
	if st == WalkStop || err != nil {
		return st, err
	}
	if st != WalkSkipChildren {
		if st, err = walkChildren(n, w); st == WalkStop || err != nil {
			return st, err
		}
	}
	return w(n, false)
}

func walkChildren(n Node, w Walker) (WalkStatus, error) {
	switch t := n.(type) {
	case *Document:
		for _, e := range t.Elements {
			if st, err := walk(e, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *Section:
		if st, err := walk(t.Header.Line, w); st == WalkStop || err != nil {
			return st, err
		}
		for _, e := range t.Elements {
			if st, err := walk(e, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *Paragraph:
		for _, e := range t.Elements {
			if st, err := walk(e, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *List:
		for _, item := range t.Items {
			if st, err := walk(item, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *ListItem:
		if st, err := walk(t.Text, w); st == WalkStop || err != nil {
			return st, err
		}
		for _, c := range t.Children {
			if st, err := walk(c, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *Table:
		for i := range t.Header.Cells {
			if st, err := walk(t.Header.Cells[i].Text, w); st == WalkStop || err != nil {
				return st, err
			}
		}
		for _, row := range t.Rows {
			for i := range row.Cells {
				if st, err := walk(row.Cells[i].Text, w); st == WalkStop || err != nil {
					return st, err
				}
			}
		}
	case *Quote:
		for _, l := range t.Text {
			if st, err := walk(l, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *TextLine:
		for _, sub := range t.SubText {
			if st, err := walk(sub, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	case *Anchor:
		if st, err := walk(t.Description, w); st == WalkStop || err != nil {
			return st, err
		}
	case *Centered:
		if st, err := walk(t.Line, w); st == WalkStop || err != nil {
			return st, err
		}
	case *BoldText:
		return walk(t.Value, w)
	case *ItalicText:
		return walk(t.Value, w)
	case *UnderlinedText:
		return walk(t.Value, w)
	case *StrikedText:
		return walk(t.Value, w)
	case *SuperscriptText:
		return walk(t.Value, w)
	case *Colored:
		return walk(t.Value, w)
	case *Import:
		if t.Anchor != nil {
			if doc := t.Anchor.Document(); doc != nil {
				if st, err := walk(doc, w); st == WalkStop || err != nil {
					return st, err
				}
			}
		}
	case *PlaceholderBlock:
		if v, ok := t.Shared.Value(); ok {
			return walk(v, w)
		}
	case *PlaceholderInline:
		if v, ok := t.Shared.Value(); ok {
			return walk(v, w)
		}
	case *Template:
		for _, e := range t.Text {
			if st, err := walk(e, w); st == WalkStop || err != nil {
				return st, err
			}
		}
	}
	return WalkContinue, nil
}
