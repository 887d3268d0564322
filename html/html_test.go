package html

import "testing"

func TestWhitespaceCollapse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"multiple spaces collapse to one", "a   b", "a b"},
		{"tab and newline collapse", "a\t\n  b", "a b"},
		{"leading text whitespace is dropped", " a", "a"},
		{"trailing text whitespace is dropped", "a ", "a"},
		{"doctype attribute whitespace collapses", "<!DOCTYPE html>   <html  lang=  en >", "<!DOCTYPE html> <html lang=en>"},
		{"empty attribute collapses", `<div class="">x</div>`, "<div class>x</div>"},
		{"unquoted attribute whitespace drops around equals", "<a href = /x >y</a>", "<a href=/x>y</a>"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := minify(t, c.in, nil)
			if got != c.want {
				t.Errorf("minify(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCJKWhitespaceElision(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"space between CJK ideographs is elided", "你好 世界", "你好世界"},
		{"space between CJK and latin is preserved", "你好 world", "你好 world"},
		{"hangul adjacency elides", "안녕 하세요", "안녕하세요"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := minify(t, c.in, nil)
			if got != c.want {
				t.Errorf("minify(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCommentRemoval(t *testing.T) {
	in := "a<!-- drop me -->b"
	want := "a b"
	got := minify(t, in, nil)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCommentPreservedWhenConfigured(t *testing.T) {
	in := "a<!-- keep me -->b"
	got := minify(t, in, func(m *Minifier) { m.SetRemoveComments(false) })
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestDoctypePassthrough(t *testing.T) {
	in := "<!DOCTYPE html>\n<html></html>"
	want := "<!DOCTYPE html> <html></html>"
	got := minify(t, in, nil)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBogusMarkupTolerated(t *testing.T) {
	in := "<!weird>text"
	got := minify(t, in, nil)
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestSelfClosingTag(t *testing.T) {
	in := `<img src="x.png" />`
	want := `<img src="x.png"/>`
	got := minify(t, in, nil)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEndTagTrailingWhitespace(t *testing.T) {
	in := "<div>x</div   >"
	want := "<div>x</div>"
	got := minify(t, in, nil)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
