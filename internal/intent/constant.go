package intent

// FallbackIntent is returned when no rule matches.
const FallbackIntent = IntentUnknown

// DefaultRules is the fixed precedence list. Phrases overlap across intents
// ("thanks for the weather"), so the first matching rule wins and the order
// below must not change.
var DefaultRules = []Rule{
	{Intent: IntentGreeting, Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{Intent: IntentWeather, Keywords: []string{"weather", "temperature", "forecast", "climate"}},
	{Intent: IntentNews, Keywords: []string{"news", "headlines", "current events", "latest news"}},
	{Intent: IntentCreateReminder, Keywords: []string{"remind me", "set a reminder", "setting a reminder", "create a reminder", "reminder to", "remember to"}},
	{Intent: IntentTime, Keywords: []string{"time", "clock", "what time"}},
	{Intent: IntentDate, Keywords: []string{"date", "today", "what day", "calendar"}},
	{Intent: IntentHelp, Keywords: []string{"help", "what can you do", "commands", "options"}},
	{Intent: IntentThanks, Keywords: []string{"thank", "thanks", "thank you"}},
	{Intent: IntentGoodbye, Keywords: []string{"goodbye", "bye", "see you", "farewell"}},
}
