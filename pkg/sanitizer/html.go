// Package sanitizer filters rendered email HTML with a bluemonday policy.
package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Elements goldmark emits for the email templates, tables included.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3",
			"strong", "em", "del",
			"ul", "ol", "li", "blockquote",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		emailPolicy.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|right|center)$`)).OnElements("th", "td")
		emailPolicy.AllowURLSchemes("mailto", "http", "https")
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.RequireParseableURLs(true)
	})
}

// EmailHTML keeps the formatting markdown email bodies need (paragraphs,
// headings, emphasis, lists, tables, links) and drops everything else.
// Only mailto, http and https links survive.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}
