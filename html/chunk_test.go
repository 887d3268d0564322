package html

import (
	"bytes"
	"math/rand"
	"testing"
)

// minifyChunked runs src through Digest calls split at the given byte
// offsets (an offset below the previous one is skipped) and returns the
// output, so callers can compare it against a single-chunk run.
func minifyChunked(t *testing.T, src string, offsets []int) string {
	t.Helper()
	m := New()
	var out bytes.Buffer
	prev := 0
	for _, off := range offsets {
		if off < prev || off > len(src) {
			continue
		}
		if err := m.Digest([]byte(src[prev:off]), &out); err != nil {
			t.Fatalf("Digest: %v", err)
		}
		prev = off
	}
	if err := m.Digest([]byte(src[prev:]), &out); err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if err := m.Finalize(&out); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return out.String()
}

func TestChunkBoundaryIndependence(t *testing.T) {
	docs := []string{
		`<!DOCTYPE html><html lang="en"><head><title>  Hi  </title></head>` +
			`<body class="  a   b  "><p>Hello   World</p><!-- note -->` +
			`<script>var x = 1   +   2;</script><pre>  keep  me  </pre>` +
			`<p>你好 世界 and more</p></body></html>`,
		`<div class=foo data-x=1 disabled="">text <b>bold</b> text</div>`,
		`<style>a { color: red; }</style><code>var y = 2;</code>`,
	}

	rng := rand.New(rand.NewSource(1))
	for di, doc := range docs {
		whole := minify(t, doc, nil)
		for trial := 0; trial < 20; trial++ {
			n := rng.Intn(6) + 1
			offsets := make([]int, n)
			for i := range offsets {
				offsets[i] = rng.Intn(len(doc) + 1)
			}
			got := minifyChunked(t, doc, offsets)
			if got != whole {
				t.Fatalf("doc %d trial %d: chunked output mismatch\n offsets=%v\n got =%q\n want=%q", di, trial, offsets, got, whole)
			}
		}
	}
}

func TestChunkBoundaryInsideMultibyteRune(t *testing.T) {
	doc := "<p>你好世界</p>"
	whole := minify(t, doc, nil)
	for cut := 1; cut < len(doc); cut++ {
		got := minifyChunked(t, doc, []int{cut})
		if got != whole {
			t.Fatalf("cut at %d: got %q, want %q", cut, got, whole)
		}
	}
}
