package html

import "testing"

func TestScriptBodyMinified(t *testing.T) {
	in := "<script>\n  var   x   =   1 ;\n</script>"
	got := minify(t, in, nil)
	if got == in {
		t.Fatalf("expected script body to be minified, got unchanged: %q", got)
	}
	if got[:len("<script>")] != "<script>" || got[len(got)-len("</script>"):] != "</script>" {
		t.Errorf("expected script tags preserved, got %q", got)
	}
}

func TestScriptBodyUntouchedWhenMinifyCodeDisabled(t *testing.T) {
	in := "<script>\n  var   x   =   1 ;\n</script>"
	got := minify(t, in, func(m *Minifier) { m.SetMinifyCode(false) })
	if got != in {
		t.Errorf("got %q, want unchanged %q", got, in)
	}
}

func TestStyleBodyMinified(t *testing.T) {
	in := "<style>\n  body   {   color :  red ;  }\n</style>"
	got := minify(t, in, nil)
	if got == in {
		t.Fatalf("expected style body to be minified, got unchanged: %q", got)
	}
}

func TestUnrecognizedScriptTypeIsLeftRaw(t *testing.T) {
	in := `<script type="text/template"> {{ not.js }} </script>`
	got := minify(t, in, nil)
	if got != in {
		t.Errorf("got %q, want unchanged %q", got, in)
	}
}

func TestPreservesPreVerbatim(t *testing.T) {
	in := "<pre>  line one\n  line   two  </pre>"
	got := minify(t, in, nil)
	if got != in {
		t.Errorf("got %q, want unchanged %q", got, in)
	}
}

func TestPreservesTextareaVerbatim(t *testing.T) {
	in := "<textarea>  keep   this   spacing  </textarea>"
	got := minify(t, in, nil)
	if got != in {
		t.Errorf("got %q, want unchanged %q", got, in)
	}
}

func TestRawCloseFalseAlarmTolerated(t *testing.T) {
	// "</scra" is a false alarm: it matches "</scr" against the expected
	// "</script" close sequence before diverging, and must not be mistaken
	// for (or swallow) the real close tag that follows.
	in := "<script>a</scrab</script>"
	got := minify(t, in, nil)
	if got[:len("<script>")] != "<script>" {
		t.Errorf("expected open tag preserved, got %q", got)
	}
	if got[len(got)-len("</script>"):] != "</script>" {
		t.Errorf("expected output to end with the close tag, got %q", got)
	}
}

func TestNestedTagsInsidePreAreNotParsed(t *testing.T) {
	in := "<pre><div>not a real tag</div></pre>"
	got := minify(t, in, nil)
	if got != in {
		t.Errorf("got %q, want unchanged %q", got, in)
	}
}
