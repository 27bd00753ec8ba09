// ABOUTME: Reading time estimation from an article's plain text content
// ABOUTME: Word count over whitespace at 200 words per minute, rounded up

package transform

import "strings"

// wordsPerMinute is the assumed reading speed for the estimate.
const wordsPerMinute = 200

// ReadingTime returns ceil(words/200) minutes for the given text, where
// words are runs of non-whitespace. Empty text yields 0.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
