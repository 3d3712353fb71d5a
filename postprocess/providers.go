package postprocess

import (
	"strconv"
	"strings"
	"time"

	"github.com/jschaf/snekdown/ast"
)

// builtinProviders returns the standard placeholder providers: date/time, a
// table-of-contents built from the Sections seen in this Document,
// bibliography-derived entry counts, and a dotted "config.*" lookup into
// the loaded Configuration.
func builtinProviders(toc []*ast.Section, bib map[string]*ast.BibEntry, cfg *ast.Configuration) []Provider {
	return []Provider{
		dateTimeProvider{},
		tocProvider{sections: toc},
		bibCountProvider{entries: bib},
		configProvider{cfg: cfg},
	}
}

type dateTimeProvider struct{}

func (dateTimeProvider) Resolve(name string) (ast.Element, bool) {
	now := time.Now()
	switch name {
	case "date":
		return plain(now.Format("2006-01-02")), true
	case "time":
		return plain(now.Format("15:04:05")), true
	case "datetime":
		return plain(now.Format(time.RFC3339)), true
	default:
		return nil, false
	}
}

// tocProvider resolves the "toc" placeholder to a flat unordered List with
// one plain-text item per Section, in document order. Each item's Level is
// its section's header size, but items are not nested and do not link to
// the section anchors.
type tocProvider struct{ sections []*ast.Section }

func (p tocProvider) Resolve(name string) (ast.Element, bool) {
	if name != "toc" {
		return nil, false
	}
	list := ast.NewList()
	list.Ordered = false
	for _, s := range p.sections {
		line := ast.NewTextLine()
		line.AddSubText(&ast.PlainText{Value: sectionTitle(s)})
		item := ast.NewListItem(line, uint16(s.Header.Size), false)
		list.AddItem(item)
	}
	return list, true
}

func sectionTitle(s *ast.Section) string {
	return plainText(s.Header.Line)
}

// bibCountProvider resolves "bibcount" to the number of distinct
// bibliography entries defined in the document, and "bibcount.key" to 1 or
// 0 depending on whether that entry exists.
type bibCountProvider struct{ entries map[string]*ast.BibEntry }

func (p bibCountProvider) Resolve(name string) (ast.Element, bool) {
	if name == "bibcount" {
		return plain(strconv.Itoa(len(p.entries))), true
	}
	if key, ok := strings.CutPrefix(name, "bibcount."); ok {
		if _, found := p.entries[key]; found {
			return plain("1"), true
		}
		return plain("0"), true
	}
	return nil, false
}

// configProvider resolves "config.key" against the loaded Configuration.
type configProvider struct{ cfg *ast.Configuration }

func (p configProvider) Resolve(name string) (ast.Element, bool) {
	rest, ok := strings.CutPrefix(name, "config.")
	if !ok {
		return nil, false
	}
	v, ok := p.cfg.Get(rest)
	if !ok {
		return nil, false
	}
	return plain(v), true
}

func plain(s string) *ast.PlainText { return &ast.PlainText{Value: s} }
