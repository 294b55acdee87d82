package linker

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
)

var (
	urlPrefix  = regexp.MustCompile(`^(?:http|ftp)s?://`)
	typeName   = regexp.MustCompile(`(?:module:|external:|event:)?[A-Za-z_$][\w$]*(?:[.#~/:-][\w$]+)*`)
	arrayOfAny = regexp.MustCompile(`Array\.?<([^<>]*)>`)
)

// HTMLSafe escapes the characters that would start markup or an entity.
func HTMLSafe(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	return strings.ReplaceAll(s, "<", "&lt;")
}

// Linkto renders a link to longname with the given (already safe) text. Unknown
// longnames render as text only; URLs link directly; type expressions link each
// component name separately.
func (r *Registry) Linkto(longname, text string) string {
	stripped := strings.TrimSuffix(strings.TrimPrefix(longname, "<"), ">")
	if urlPrefix.MatchString(stripped) {
		if text == "" {
			text = HTMLSafe(stripped)
		}
		return fmt.Sprintf(`<a href="%s">%s</a>`, stripped, text)
	}
	if isTypeExpression(longname) {
		return r.LinkType(longname)
	}
	if text == "" {
		text = HTMLSafe(longname)
	}
	u, ok := r.urls[longname]
	if !ok {
		return text
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, u, text)
}

// LinkType renders a type expression with every registered name linked and the
// remaining text escaped. Array notation is normalised first.
func (r *Registry) LinkType(expr string) string {
	expr = NormalizeType(expr)
	var b strings.Builder
	last := 0
	for _, loc := range typeName.FindAllStringIndex(expr, -1) {
		b.WriteString(HTMLSafe(expr[last:loc[0]]))
		name := expr[loc[0]:loc[1]]
		if u, ok := r.urls[name]; ok {
			fmt.Fprintf(&b, `<a href="%s">%s</a>`, u, HTMLSafe(name))
		} else {
			b.WriteString(HTMLSafe(name))
		}
		last = loc[1]
	}
	b.WriteString(HTMLSafe(expr[last:]))
	return b.String()
}

// NormalizeType rewrites Array.<T> and Array<T> to T[], innermost first.
func NormalizeType(expr string) string {
	for {
		next := arrayOfAny.ReplaceAllStringFunc(expr, func(m string) string {
			inner := strings.TrimSpace(arrayOfAny.FindStringSubmatch(m)[1])
			if inner == "" {
				return "Array"
			}
			if strings.ContainsAny(inner, "|, ") && !(strings.HasPrefix(inner, "(") && strings.HasSuffix(inner, ")")) {
				inner = "(" + inner + ")"
			}
			return inner + "[]"
		})
		if next == expr {
			return expr
		}
		expr = next
	}
}

func isTypeExpression(s string) bool {
	return strings.ContainsAny(s, "<>{}()|[],!?*=")
}

// AncestorLinks renders breadcrumb links for ancestors (root first). The last link
// carries the separator that precedes d's own name.
func (r *Registry) AncestorLinks(ancestors []*doclet.Doclet, d *doclet.Doclet) []string {
	links := make([]string, 0, len(ancestors))
	for _, a := range ancestors {
		links = append(links, r.Linkto(a.Longname, HTMLSafe(r.scopePunc(a.Scope)+a.Name)))
	}
	if len(links) > 0 {
		links[len(links)-1] += r.scopePunc(d.Scope)
	}
	return links
}

func (r *Registry) scopePunc(scope doclet.Scope) string {
	if scope == "" || scope == doclet.ScopeGlobal {
		return ""
	}
	return r.punct.For(scope)
}

// RegisterTutorial claims a file for the named tutorial and returns its URL.
func (r *Registry) RegisterTutorial(name, title string) string {
	if t, ok := r.tutorials[name]; ok {
		return t.url
	}
	u := r.UniqueFilename("tutorial-" + name)
	r.tutorials[name] = tutorialLink{url: u, title: title}
	return u
}

// TutorialURL returns the URL of a registered tutorial.
func (r *Registry) TutorialURL(name string) (string, bool) {
	t, ok := r.tutorials[name]
	return t.url, ok
}

// Tutorial returns the URL and title of a registered tutorial.
func (r *Registry) Tutorial(name string) (url, title string, ok bool) {
	t, ok := r.tutorials[name]
	return t.url, t.title, ok
}

// TutorialLink renders a link to the named tutorial, or a disabled marker when it is unknown.
func (r *Registry) TutorialLink(name, text string) string {
	t, ok := r.tutorials[name]
	if !ok {
		return fmt.Sprintf(`<em class="disabled">Tutorial: %s</em>`, HTMLSafe(name))
	}
	if text == "" {
		text = HTMLSafe(t.title)
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, t.url, text)
}
