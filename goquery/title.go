package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tripkml"
	"golang.org/x/net/html"
)

// Ensure TitleExtractor implements tripkml.TitleExtractor at compile time.
var _ tripkml.TitleExtractor = (*TitleExtractor)(nil)

// WanderlogSuffixes are the title separators Wanderlog appends to trip pages.
// The second form is the en dash after a UTF-8 page was decoded as
// Windows-1252, which happens when an export is re-saved by some browsers.
var WanderlogSuffixes = []string{
	" – Wanderlog",
	" â€“ Wanderlog",
}

// TitleExtractor reads the trip title from the page's <title> elements.
type TitleExtractor struct {
	suffixes []string
}

// NewTitleExtractor creates a TitleExtractor that accepts titles ending with
// one of suffixes. With no suffixes, WanderlogSuffixes are used.
func NewTitleExtractor(suffixes ...string) *TitleExtractor {
	if len(suffixes) == 0 {
		suffixes = WanderlogSuffixes
	}
	return &TitleExtractor{suffixes: suffixes}
}

// ExtractTitle returns the text preceding the site suffix of the first
// <title> element that carries one, with surrounding whitespace trimmed.
func (e *TitleExtractor) ExtractTitle(rawHTML string) (string, bool) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}
	doc := goquery.NewDocumentFromNode(root)

	var title string
	var found bool
	doc.Find("title").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title, found = e.trimSuffix(sel.Text())
		return !found
	})

	return title, found
}

func (e *TitleExtractor) trimSuffix(text string) (string, bool) {
	text = strings.TrimSpace(text)

	for _, suffix := range e.suffixes {
		if before, ok := strings.CutSuffix(text, suffix); ok {
			return strings.TrimSpace(before), true
		}
	}
	return "", false
}
