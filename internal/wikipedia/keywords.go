package wikipedia

import (
	"strings"
	"unicode"
)

const maxKeywords = 8

var keywordStopwords = map[string]bool{
	"about":  true,
	"after":  true,
	"being":  true,
	"during": true,
	"from":   true,
	"their":  true,
	"there":  true,
	"these":  true,
	"this":   true,
	"with":   true,
	"which":  true,
	"where":  true,
	"while":  true,
}

// extractKeywords derives a short keyword string from a caption: lowercase
// words of four or more letters, stopwords dropped, order preserved,
// duplicates removed.
func extractKeywords(caption string) string {
	if caption == "" {
		return ""
	}

	words := strings.FieldsFunc(strings.ToLower(caption), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	seen := make(map[string]bool, len(words))
	keywords := make([]string, 0, maxKeywords)
	for _, w := range words {
		if len([]rune(w)) < 4 || keywordStopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return strings.Join(keywords, " ")
}
