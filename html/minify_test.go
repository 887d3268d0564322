package html

import "testing"

// minify runs src through a single Digest+Finalize call with the given
// configuration and returns the result as a string.
func minify(t *testing.T, src string, configure func(*Minifier)) string {
	t.Helper()
	m := New()
	if configure != nil {
		configure(m)
	}
	b := &Buffered{m: m}
	if err := b.Digest([]byte(src)); err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if err := b.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	out := make([]byte, len(b.Bytes()))
	copy(out, b.Bytes())
	return string(out)
}
