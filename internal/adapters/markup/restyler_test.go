package markup

import (
	"strings"
	"testing"
)

func TestRestyleOverwritesMappedTags(t *testing.T) {
	r := NewRestyler()

	in := `<html><head></head><body>` +
		`<h1 class="hero" style="color:red">Title</h1>` +
		`<p style="font-size:99px">Body</p>` +
		`<a href="https://example.com" class="link">Link</a>` +
		`</body></html>`

	out, err := r.Restyle(in)
	if err != nil {
		t.Fatalf("Restyle: %v", err)
	}

	assertContains(t, out, `<h1 style="`+tagStyles["h1"]+`">`)
	assertContains(t, out, `<p style="`+tagStyles["p"]+`">`)
	assertContains(t, out, `href="https://example.com"`)
	assertContains(t, out, tagStyles["a"])
	assertNotContains(t, out, "color:red")
	assertNotContains(t, out, "font-size:99px")
	assertNotContains(t, out, `class="hero"`)
	assertNotContains(t, out, `class="link"`)
}

func TestRestyleLeavesUnmappedTagsAlone(t *testing.T) {
	r := NewRestyler()

	out, err := r.Restyle(`<div class="keep" style="color:green"><span>text</span></div>`)
	if err != nil {
		t.Fatalf("Restyle: %v", err)
	}

	assertContains(t, out, `class="keep"`)
	assertContains(t, out, "color:green")
}

func TestRestyleNestedLists(t *testing.T) {
	r := NewRestyler()

	out, err := r.Restyle(`<ul class="menu"><li class="item">one</li><li>two</li></ul>`)
	if err != nil {
		t.Fatalf("Restyle: %v", err)
	}

	assertContains(t, out, `<ul style="`+tagStyles["ul"]+`">`)
	if got := strings.Count(out, `<li style="`+tagStyles["li"]+`">`); got != 2 {
		t.Errorf("expected 2 restyled list items, got %d in %q", got, out)
	}
	assertNotContains(t, out, "class=")
}

func assertContains(t *testing.T, body, expected string) {
	t.Helper()
	if !strings.Contains(body, expected) {
		t.Fatalf("expected output to contain %q, got %q", expected, body)
	}
}

func assertNotContains(t *testing.T, body, unexpected string) {
	t.Helper()
	if strings.Contains(body, unexpected) {
		t.Fatalf("expected output to not contain %q, got %q", unexpected, body)
	}
}
