// Package textnorm reduces review text to the canonical form fed to the
// bag-of-words vectorizer. Training and prediction must both go through Normalize.
package textnorm

import "strings"

// EmptyDocument replaces documents made only of stop words, so the
// vectorizer never sees an all-zero row.
const EmptyDocument = "emptydocument"

// Normalize returns EmptyDocument when every whitespace-separated token of
// text, lower-cased, is an English stop word (vacuously true for ""),
// and text unchanged otherwise.
func Normalize(text string) string {
	for _, tok := range strings.Fields(text) {
		if !IsStopWord(tok) {
			return text
		}
	}
	return EmptyDocument
}

// IsStopWord reports whether the lower-cased token is in the English stop-word set.
func IsStopWord(tok string) bool {
	_, ok := stopWords[strings.ToLower(tok)]
	return ok
}
