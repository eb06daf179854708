package chunk

import "strings"

// tokensPerWord is the rough ratio for English text.
const tokensPerWord = 1.33

// EstimateTokens gives an approximate token count from the word count.
// Exact tokenization is not required for sizing chunks.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	tokens := int(float64(words) * tokensPerWord)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}
