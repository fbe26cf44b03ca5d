package converter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"medusaseed/pkg/utils"
)

// StripHTML removes script and style subtrees from a product description
// and flattens the rest to visible text, with element boundaries collapsed
// to single spaces. Malformed markup is parsed best-effort; the function
// never fails, and empty input yields an empty string.
func StripHTML(markup string) string {
	if markup == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return utils.NormalizeWhitespace(markup)
	}

	doc.Find("script, style").Remove()

	var parts []string

	for _, node := range doc.Selection.Nodes {
		collectText(node, &parts)
	}

	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := utils.NormalizeWhitespace(n.Data); text != "" {
			*parts = append(*parts, text)
		}

		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// ExtractImageURLs returns the src attribute of every img element in the
// markup, in document order. Empty input or unparseable markup yields nil.
func ExtractImageURLs(markup string) []string {
	if markup == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var urls []string

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			urls = append(urls, src)
		}
	})

	return urls
}
