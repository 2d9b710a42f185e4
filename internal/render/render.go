// Package render turns fetched article HTML into markdown suitable for a
// terminal.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// Elements that carry page chrome rather than article content.
var droppedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"link":     true,
	"meta":     true,
	"noscript": true,
	"iframe":   true,
	"nav":      true,
	"footer":   true,
}

// PageToMarkdown converts article HTML to cleaned-up markdown.
func PageToMarkdown(input string) (string, error) {
	cleaned, err := stripChrome(input)
	if err != nil {
		// Fall back to converting the raw input.
		cleaned = input
	}

	markdown, err := htmltomarkdown.ConvertString(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}

	return tidyMarkdown(markdown), nil
}

// stripChrome parses the HTML and removes non-content elements before
// conversion.
func stripChrome(input string) (string, error) {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return "", err
	}

	removeDropped(doc)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func removeDropped(n *html.Node) {
	var next *html.Node
	for child := n.FirstChild; child != nil; child = next {
		next = child.NextSibling
		if child.Type == html.ElementNode && droppedElements[child.Data] {
			n.RemoveChild(child)
			continue
		}
		removeDropped(child)
	}
}

func tidyMarkdown(markdown string) string {
	out := blankRunPattern.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(out) + "\n"
}
