package gol10n

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// setHTMLAttributes sets lang and dir attributes on the <html> tag of a
// full HTML document. Fragments without an <html> element are returned
// unchanged so the engine never rewraps partials.
func setHTMLAttributes(content, lang string) string {
	if !strings.Contains(strings.ToLower(content), "<html") {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() == 0 {
		return content
	}
	htmlTag.SetAttr("lang", ToHTMLLang(lang))
	htmlTag.SetAttr("dir", GetDirection(lang))

	result, err := doc.Html()
	if err != nil {
		return content
	}

	return result
}
