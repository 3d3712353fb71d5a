package html

import (
	_ "embed"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

//go:embed assets/style.css
var rawStyle string

var (
	minifyOnce sync.Once
	minified   string
)

// minifiedStyle returns the bundled stylesheet, minified exactly once and
// cached for every subsequent Document render.
func minifiedStyle() string {
	minifyOnce.Do(func() {
		m := minify.New()
		m.AddFunc("text/css", css.Minify)
		out, err := m.String("text/css", rawStyle)
		if err != nil {
			out = rawStyle
		}
		minified = out
	})
	return minified
}
