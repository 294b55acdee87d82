package nav

import (
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/page"
)

// TOC builds the table of contents of p: usage sections for container pages
// (or for the entry spliced into the home page), the headings of its rich
// text, then one section per non-empty child group.
func TOC(p *page.Page) []*page.TOCEntry {
	var toc []*page.TOCEntry
	d := p.Doclet
	if p.Entry != nil {
		d = p.Entry
	}
	if p.Kind.IsContainer() || p.Entry != nil {
		if d.Signature != "" {
			toc = append(toc, &page.TOCEntry{ID: "usage", Title: "Usage", Level: 2})
		}
		if len(d.Params) > 0 {
			toc = append(toc, &page.TOCEntry{ID: "parameters", Title: "Parameters", Level: 2})
		}
		if len(d.Properties) > 0 {
			toc = append(toc, &page.TOCEntry{ID: "properties", Title: "Properties", Level: 2})
		}
		if len(d.Examples) > 0 {
			toc = append(toc, &page.TOCEntry{ID: "examples", Title: "Examples", Level: 2})
		}
	}

	if p.Kind != doclet.KindSource {
		for _, text := range []string{d.ClassDesc, d.Description, p.Body} {
			toc = append(toc, Headings(text)...)
		}
	}

	for _, g := range p.Sections() {
		section := &page.TOCEntry{ID: g.ID, Title: g.Title, Level: 2}
		for _, m := range g.Members {
			section.Children = append(section.Children, &page.TOCEntry{ID: m.Anchor, Title: m.Name, Level: 3})
		}
		toc = append(toc, section)
	}
	return toc
}

// Headings extracts the identified headings of an HTML fragment as a tree. A
// heading's parent is the closest preceding heading with a shallower level.
func Headings(fragment string) []*page.TOCEntry {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var roots, stack []*page.TOCEntry
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if level := headingLevel(n); level > 0 {
			if id := getAttr(n, "id"); id != "" {
				e := &page.TOCEntry{ID: id, Title: extractText(n), Level: level}
				for len(stack) > 0 && stack[len(stack)-1].Level >= level {
					stack = stack[:len(stack)-1]
				}
				if len(stack) == 0 {
					roots = append(roots, e)
				} else {
					parent := stack[len(stack)-1]
					parent.Children = append(parent.Children, e)
				}
				stack = append(stack, e)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return roots
}

func headingLevel(n *html.Node) int {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	if l := int(n.Data[1] - '0'); l >= 1 && l <= 6 {
		return l
	}
	return 0
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}
	return strings.TrimSpace(text.String())
}

// TOCHTML renders a table of contents as nested lists.
func TOCHTML(toc []*page.TOCEntry) string {
	if len(toc) == 0 {
		return ""
	}
	var sb strings.Builder
	writeTOC(&sb, toc)
	return sb.String()
}

func writeTOC(sb *strings.Builder, toc []*page.TOCEntry) {
	sb.WriteString("<ul>")
	for _, e := range toc {
		sb.WriteString(`<li><a href="#`)
		sb.WriteString(html.EscapeString(e.ID))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(e.Title))
		sb.WriteString("</a>")
		if len(e.Children) > 0 {
			writeTOC(sb, e.Children)
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}
