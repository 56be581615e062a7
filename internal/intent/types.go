package intent

// Intent is the classified purpose of an utterance.
type Intent string

const (
	IntentGreeting       Intent = "GREETING"
	IntentWeather        Intent = "WEATHER"
	IntentNews           Intent = "NEWS"
	IntentCreateReminder Intent = "CREATE_REMINDER"
	IntentTime           Intent = "TIME"
	IntentDate           Intent = "DATE"
	IntentHelp           Intent = "HELP"
	IntentThanks         Intent = "THANKS"
	IntentGoodbye        Intent = "GOODBYE"
	IntentUnknown        Intent = "UNKNOWN"
)

// Rule maps an intent to the phrases that trigger it.
// A rule matches when the text contains any of its keywords.
type Rule struct {
	Intent   Intent
	Keywords []string
}

// Output is the result of a classification.
// Keyword is the phrase that matched, empty for IntentUnknown.
type Output struct {
	Intent  Intent `json:"intent"`
	Keyword string `json:"keyword,omitempty"`
}
