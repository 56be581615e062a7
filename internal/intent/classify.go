package intent

import "strings"

// Classify returns the intent of the first rule whose keyword set occurs in text.
// text is expected to be normalized already; no case folding happens here.
func (c *KeywordClassifier) Classify(text string) Output {
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return Output{Intent: rule.Intent, Keyword: kw}
			}
		}
	}
	return Output{Intent: FallbackIntent}
}
