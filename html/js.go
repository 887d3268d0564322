package html

import (
	"bytes"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

// minifyJS is the embedded JS minifier adapter, pure with a same-bytes
// fallback on failure (see minifyCSS).
func minifyJS(src []byte) []byte {
	m := minify.New()
	var buf bytes.Buffer
	if err := js.Minify(m, &buf, bytes.NewReader(src), nil); err != nil {
		return src
	}
	return buf.Bytes()
}
