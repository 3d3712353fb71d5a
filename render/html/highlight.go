package html

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle mirrors the InspiredGitHub theme the reference renderer
// requests from syntect.
var highlightStyle = styles.Get("inspired-github")

// highlight renders code in the named language to a self-contained HTML
// fragment. ok is false when no lexer is registered for language, in which
// case the caller falls back to a plain escaped <pre>.
func highlight(language, code string) (out string, ok bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	formatter := chromahtml.New(chromahtml.WithClasses(false))
	var buf strings.Builder
	if err := formatter.Format(&buf, highlightStyle, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}
