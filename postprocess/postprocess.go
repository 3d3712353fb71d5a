// Package postprocess runs the single post-join tree walk that binds every
// late-bound node a Parser left empty: placeholders, bibliography
// references, template variables, and section anchors. It runs once, after
// every import worker has joined, exactly as spec.md §4.5 describes.
package postprocess

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"

	"github.com/jschaf/snekdown/ast"
)

// Provider resolves a named placeholder to a tree element, or reports it
// unknown.
type Provider interface {
	Resolve(name string) (ast.Element, bool)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(name string) (ast.Element, bool)

func (f ProviderFunc) Resolve(name string) (ast.Element, bool) { return f(name) }

// Options configures a Process run.
type Options struct {
	Config    *ast.Configuration
	Providers []Provider // consulted in order; first match wins
}

// Process binds placeholders against opts.Providers (falling back to the
// built-in date/time, toc and config.* providers), assigns bibliography
// reference indices in first-use order, and disambiguates section anchors.
//
// Placeholders are resolved before bibliography indexing: a placeholder's
// resolved value can itself introduce a BibReference that still needs an
// index (spec.md Open Question — decided in SPEC_FULL.md §9).
func Process(doc *ast.Document, opts Options) error {
	bib := collectBibEntries(doc)
	toc := collectSections(doc)
	providers := append(append([]Provider{}, opts.Providers...), builtinProviders(toc, bib, opts.Config)...)
	bindBibTemplates(bib)

	if err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.PlaceholderBlock:
			resolvePlaceholder(t.Shared, providers)
		case *ast.PlaceholderInline:
			resolvePlaceholder(t.Shared, providers)
		}
		return ast.WalkContinue, nil
	}); err != nil {
		return err
	}

	nextIndex := 1
	assigned := map[string]int{}
	anchors := map[string]struct{}{}

	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.BibReference:
			entry, ok := bib[t.Key]
			if !ok {
				return ast.WalkContinue, nil
			}
			idx, seen := assigned[t.Key]
			if !seen {
				idx = nextIndex
				nextIndex++
				assigned[t.Key] = idx
			}
			t.Resolve(entry, idx)
		case *ast.Section:
			t.Header.Anchor = uniqueAnchor(t.Header.Anchor, plainText(t.Header.Line), anchors)
		}
		return ast.WalkContinue, nil
	})
}

func resolvePlaceholder(p *ast.Placeholder, providers []Provider) {
	if _, ok := p.Value(); ok {
		return
	}
	for _, provider := range providers {
		if v, ok := provider.Resolve(p.Name); ok {
			p.Resolve(v)
			return
		}
	}
}

// bindBibTemplates binds each TemplateVariable in a BibEntry's display
// template to that entry's own field values, i.e. the entry is the
// "enclosing template invocation" whose argument map a TemplateVariable
// resolves against.
func bindBibTemplates(bib map[string]*ast.BibEntry) {
	for _, entry := range bib {
		if entry.Display == nil {
			continue
		}
		tv, ok := (*entry.Display).(ast.TemplateValue)
		if !ok {
			continue
		}
		for _, el := range tv.Template.Text {
			v, ok := el.(*ast.TemplateVariable)
			if !ok {
				continue
			}
			if val, found := entry.Fields[v.Name]; found {
				v.Bind(&ast.PlainText{Value: val})
			}
		}
	}
}

func collectBibEntries(doc *ast.Document) map[string]*ast.BibEntry {
	bib := map[string]*ast.BibEntry{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if line, ok := n.(*ast.BibEntryLine); ok {
			bib[line.Entry.Key] = line.Entry
		}
		return ast.WalkContinue, nil
	})
	return bib
}

func collectSections(doc *ast.Document) []*ast.Section {
	var sections []*ast.Section
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if s, ok := n.(*ast.Section); ok {
			sections = append(sections, s)
		}
		return ast.WalkContinue, nil
	})
	return sections
}

// plainText flattens a Line's visible text, used to derive a section's
// anchor slug before any explicit anchor override is honored.
func plainText(l ast.Line) string {
	var b strings.Builder
	_ = ast.Walk(l, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.PlainText:
			b.WriteString(t.Value)
		case *ast.MonospaceText:
			b.WriteString(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueAnchor uses explicit (an author-supplied `{anchor: ...}` override)
// if set, otherwise the slugified title, and disambiguates either against
// already-used anchors with a short uuid suffix.
func uniqueAnchor(explicit, title string, used map[string]struct{}) string {
	slug := explicit
	if slug == "" {
		slug = slugify(title)
	}
	if slug == "" {
		slug = "section"
	}
	candidate := slug
	if _, taken := used[candidate]; taken {
		id, err := uuid.NewV4()
		suffix := "dup"
		if err == nil {
			suffix = id.String()[:8]
		}
		candidate = fmt.Sprintf("%s-%s", slug, suffix)
	}
	used[candidate] = struct{}{}
	return candidate
}
