package markup

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// tagStyles is the static tag -> inline style table. Every matching element
// gets its style attribute overwritten from this table and any class
// attribute removed, so documents render consistently without an external
// stylesheet.
var tagStyles = map[string]string{
	"h1":         "font-size:28px;font-weight:700;color:#1a1a2e;margin:24px 0 12px",
	"h2":         "font-size:22px;font-weight:600;color:#1a1a2e;margin:20px 0 10px",
	"h3":         "font-size:18px;font-weight:600;color:#1a1a2e;margin:16px 0 8px",
	"p":          "font-size:15px;line-height:1.6;color:#333;margin:0 0 12px",
	"a":          "color:#0074d9;text-decoration:underline",
	"ul":         "margin:0 0 12px;padding-left:24px",
	"ol":         "margin:0 0 12px;padding-left:24px",
	"li":         "font-size:15px;line-height:1.6;color:#333;margin:4px 0",
	"blockquote": "border-left:3px solid #ddd;margin:12px 0;padding:4px 16px;color:#555",
	"table":      "border-collapse:collapse;width:100%;margin:0 0 12px",
	"th":         "border:1px solid #ddd;padding:8px;text-align:left;background:#f5f5f5",
	"td":         "border:1px solid #ddd;padding:8px;text-align:left",
	"img":        "max-width:100%;height:auto",
	"hr":         "border:none;border-top:1px solid #ddd;margin:16px 0",
}

type Restyler struct{}

func NewRestyler() *Restyler { return &Restyler{} }

// Restyle parses the document, rewrites the style attribute of every element
// listed in tagStyles, strips class attributes from those elements, and
// serializes the document back to a string.
func (r *Restyler) Restyle(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	restyle(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func restyle(n *html.Node) {
	if n.Type == html.ElementNode {
		if style, ok := tagStyles[n.Data]; ok {
			apply(n, style)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		restyle(c)
	}
}

// apply overwrites the element's style attribute and drops any class
// attribute, keeping everything else untouched.
func apply(n *html.Node, style string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key == "style" || a.Key == "class" {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = append(attrs, html.Attribute{Key: "style", Val: style})
}
