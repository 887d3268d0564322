package html

import (
	"bytes"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// minifyCSS is the embedded CSS minifier adapter. It is a pure function:
// any failure degrades to passing the original bytes through unchanged,
// never an error the caller has to handle.
func minifyCSS(src []byte) []byte {
	m := minify.New()
	var buf bytes.Buffer
	if err := css.Minify(m, &buf, bytes.NewReader(src), nil); err != nil {
		return src
	}
	return buf.Bytes()
}
