package linker

import (
	"regexp"
	"strings"
)

var inlineTag = regexp.MustCompile(`(?:\[([^\]]+)\])?\{@(link|linkcode|linkplain|tutorial)\s+([^}]+)\}`)

// ResolveLinks replaces inline {@link}, {@linkcode}, {@linkplain} and {@tutorial}
// tags in rendered markup. A leading [caption] overrides the link text.
func (r *Registry) ResolveLinks(s string) string {
	return inlineTag.ReplaceAllStringFunc(s, func(m string) string {
		sub := inlineTag.FindStringSubmatch(m)
		caption, tag, body := sub[1], sub[2], strings.TrimSpace(sub[3])

		if tag == "tutorial" {
			return r.TutorialLink(body, caption)
		}

		target, text := splitLinkText(body)
		if caption != "" {
			text = caption
		}
		if text == "" {
			text = HTMLSafe(target)
		}
		if tag == "linkcode" {
			text = "<code>" + text + "</code>"
		}
		if urlPrefix.MatchString(target) {
			return `<a href="` + target + `">` + text + `</a>`
		}
		u, ok := r.urls[target]
		if !ok {
			return text
		}
		return `<a href="` + u + `">` + text + `</a>`
	})
}

// splitLinkText splits "target|text" or "target text".
func splitLinkText(s string) (target, text string) {
	i := strings.IndexByte(s, '|')
	if i < 0 {
		i = strings.IndexAny(s, " \t\n")
	}
	if i < 0 {
		return s, ""
	}
	text = strings.Join(strings.Fields(s[i+1:]), " ")
	return s[:i], text
}
