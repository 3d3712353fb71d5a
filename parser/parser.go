// Package parser implements the Snekdown recursive-descent grammar: block,
// line, and inline productions over a scanner.Scanner, plus the concurrent
// import scheduler that splices sibling documents into the host tree.
package parser

import (
	"bufio"
	"fmt"
	gotok "go/token"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jschaf/snekdown/ast"
	"github.com/jschaf/snekdown/internal/diagnostic"
	"github.com/jschaf/snekdown/postprocess"
	"github.com/jschaf/snekdown/scanner"
)

// seenPaths is the shared set import workers use for cycle detection. The
// lock is held only for the duration of check-and-insert, never across
// I/O or parsing, per spec.md §5.
type seenPaths struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newSeenPaths() *seenPaths { return &seenPaths{seen: map[string]struct{}{}} }

// tryAdd reports whether path was newly added (true) or was already
// present (false, a cycle).
func (s *seenPaths) tryAdd(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[path]; ok {
		return false
	}
	s.seen[path] = struct{}{}
	return true
}

// Parser is a single-threaded recursive-descent parser for one document.
// Imports spawn sibling Parsers (see doImport) that share this Parser's
// seenPaths set. Each import worker is registered on this Parser's
// wait-group; a child Parser joins its own imports before it returns.
type Parser struct {
	scanner *scanner.Scanner
	fset    *gotok.FileSet
	file    *gotok.File

	path    string // as given to New (absolute from NewFromFile); may be empty
	dir     string // directory portion of path
	isChild bool

	seen *seenPaths
	wg   *sync.WaitGroup

	sectionNesting uint8
	sections       []uint8
	sectionReturn  *uint8

	document  *ast.Document
	config    *ast.Configuration
	providers []postprocess.Provider

	ErrOutput io.Writer
	Logger    *logrus.Logger
}

// New creates a parser over in-memory text. path, if non-empty, is used
// to resolve relative imports and to tag the resulting Document.
func New(text string, path string) *Parser {
	return create(text, nil, path, newSeenPaths(), &sync.WaitGroup{}, false)
}

// NewFromFile creates a parser that reads path.
func NewFromFile(path string) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return createFromReader(f, abs, newSeenPaths(), &sync.WaitGroup{}, false)
}

func childFromFile(path string, seen *seenPaths, wg *sync.WaitGroup) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return createFromReader(f, path, seen, wg, true)
}

func create(text string, _ io.Reader, path string, seen *seenPaths, wg *sync.WaitGroup, isChild bool) *Parser {
	fset := gotok.NewFileSet()
	file := fset.AddFile(path, -1, len(text)+1)
	p := &Parser{
		fset:      fset,
		file:      file,
		path:      path,
		isChild:   isChild,
		seen:      seen,
		wg:        wg,
		document:  ast.NewDocument(!isChild),
		ErrOutput: os.Stderr,
		Logger:    logrus.StandardLogger(),
	}
	if path != "" {
		p.dir = filepath.Dir(path)
	}
	p.scanner = scanner.New(file, text, p.scanError)
	return p
}

func createFromReader(r io.Reader, path string, seen *seenPaths, wg *sync.WaitGroup, isChild bool) (*Parser, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	p := create(string(data), nil, path, seen, wg, isChild)
	return p, nil
}

func (p *Parser) scanError(pos gotok.Position, msg string) {
	p.Logger.WithField("pos", pos.String()).Warn(msg)
}

// SetConfig attaches document-level configuration, inherited by every
// import worker this parser spawns.
func (p *Parser) SetConfig(cfg *ast.Configuration) {
	p.config = cfg
	p.document.Config = cfg
}

// SetProviders registers additional placeholder providers consulted before
// the built-in date/time, toc and config.* providers.
func (p *Parser) SetProviders(providers []postprocess.Provider) {
	p.providers = providers
}

// Path returns the path this parser was created for, or "". It is absolute
// for parsers made by NewFromFile and as given for parsers made by New.
func (p *Parser) Path() string { return p.path }

// Parse runs the grammar to completion, joins all import workers spawned
// along the way, and returns the frozen Document. It never returns an
// error: a malformed file yields a best-effort partial document, matching
// spec.md §7's "partial document truncated at the first unrecoverable
// error" contract.
func (p *Parser) Parse() (doc *ast.Document) {
	defer func() {
		if doc == nil {
			doc = p.document
		}
	}()
	defer p.recoverFatalRevert()

	p.document.Path = p.path

	for !p.scanner.AtEOF() {
		block, err := p.parseBlock()
		if err != nil {
			var pe *ParseError
			if as(err, &pe) && pe.EOF {
				break
			}
			p.reportTopLevel(err)
			break
		}
		p.document.AddElement(block)
	}

	wg := p.wg
	p.wg = &sync.WaitGroup{}
	wg.Wait()

	if p.isChild {
		// Section-local post-processing (placeholders, bib indices, anchors)
		// runs once for the whole tree, from the root Parser only.
		return p.document
	}

	if err := postprocess.Process(p.document, postprocess.Options{Config: p.config, Providers: p.providers}); err != nil {
		p.reportTopLevel(err)
	}

	return p.document
}

// as is a tiny errors.As for the single concrete type we care about here,
// avoiding an import of errors for one call site.
func as(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	*target = pe
	return true
}

func (p *Parser) recoverFatalRevert() {
	if r := recover(); r != nil {
		if fre, ok := r.(*scanner.FatalRevertError); ok {
			p.reportTopLevel(fmt.Errorf("fatal: %s", fre.Error()))
			return
		}
		panic(r)
	}
}

func (p *Parser) reportTopLevel(err error) {
	pos := p.file.Position(p.file.Pos(p.scanner.Position()))
	d := &Diagnostic{Path: p.path, Pos: pos, Message: err.Error()}
	diagnostic.Errorf(p.ErrOutput, "%s", d.String())
}

// transformPath resolves an import target relative to this parser's file.
func (p *Parser) transformPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if p.dir != "" {
		return filepath.Join(p.dir, path)
	}
	return path
}

// doImport implements the Import Scheduler (spec.md §4.4): resolve, dedupe
// under lock, spawn a worker, register it with the wait-group, and return
// the anchor immediately without blocking.
func (p *Parser) doImport(path string) (*ast.ImportAnchor, error) {
	resolved := p.transformPath(path)

	info, statErr := os.Stat(resolved)
	if statErr != nil || info.IsDir() {
		diagnostic.Warnf(p.ErrOutput, "Import of %q failed: the file doesn't exist.", resolved)
		return nil, &ImportFailure{Path: resolved, Reason: "file does not exist"}
	}

	if !p.seen.tryAdd(resolved) {
		diagnostic.Warnf(p.ErrOutput, "Import of %q failed: cyclic import.", resolved)
		return nil, &ImportFailure{Path: resolved, Reason: "cyclic import"}
	}

	anchor := ast.NewImportAnchor()
	cfg := p.config
	seen := p.seen
	wg := p.wg

	wg.Add(1)
	go func() {
		defer wg.Done()
		child, err := childFromFile(resolved, seen, &sync.WaitGroup{})
		if err != nil {
			p.Logger.WithError(err).WithField("path", resolved).Error("import failed to open")
			anchor.SetFailed()
			return
		}
		child.SetConfig(cfg)
		doc := child.Parse()
		anchor.SetDocument(doc)
	}()

	return anchor, nil
}
