package html

import "testing"

func TestClassAttributeWhitespaceNormalized(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims and collapses", `<div class="  foo   bar  ">x</div>`, `<div class="foo bar">x</div>`},
		{"single class untouched", `<div class="foo">x</div>`, `<div class="foo">x</div>`},
		{"unquoted class untouched",`<div class=foo>x</div>`, `<div class=foo>x</div>`},
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

func TestTypeAttributeNormalizedOnlyOnScriptStyle(t *testing.T) {
	in := `<div type="  a   b  ">x</div>`
	want := `<div type="  a   b  ">x</div>`
	got := minify(t, in, nil)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmptyAttributeCollapse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty double-quoted value", `<input disabled="">`, `<input disabled>`},
		{"empty single-quoted value", `<input disabled=''>`, `<input disabled>`},
		{"non-empty value keeps quotes", `<input value="1">`, `<input value="1">`},
		{"whitespace-only class value collapses", `<div class="  ">x</div>`, `<div class>x</div>`},
		{"whitespace-only non-special value collapses", `<div id="   ">x</div>`, `<div id>x</div>`},
		{"whitespace around content is preserved", `<div id="  x  ">y</div>`, `<div id="  x  ">y</div>`},
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
