package intent

// Classifier maps normalized utterance text to exactly one Intent.
type Classifier interface {
	Classify(text string) Output
}

// KeywordClassifier evaluates an ordered rule list by substring match.
type KeywordClassifier struct {
	rules []Rule
}

var _ Classifier = (*KeywordClassifier)(nil)

// New creates a KeywordClassifier over DefaultRules.
func New() *KeywordClassifier {
	return NewWithRules(DefaultRules)
}

// NewWithRules creates a KeywordClassifier over a custom rule list.
// The slice is copied; later changes by the caller are not observed.
func NewWithRules(rules []Rule) *KeywordClassifier {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &KeywordClassifier{rules: cp}
}
