package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-assistant/internal/intent"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	c := intent.New()

	tests := []struct {
		name string
		text string
		want intent.Intent
	}{
		{name: "greeting", text: "hello there", want: intent.IntentGreeting},
		{name: "good evening", text: "good evening assistant", want: intent.IntentGreeting},
		{name: "weather", text: "what's the forecast", want: intent.IntentWeather},
		{name: "news", text: "read me the headlines", want: intent.IntentNews},
		{name: "reminder", text: "remind me to call mom", want: intent.IntentCreateReminder},
		{name: "remember to", text: "remember to water plants", want: intent.IntentCreateReminder},
		{name: "time", text: "what time is it", want: intent.IntentTime},
		{name: "date", text: "what day is it", want: intent.IntentDate},
		{name: "help", text: "what can you do", want: intent.IntentHelp},
		{name: "thanks", text: "thank you so much", want: intent.IntentThanks},
		{name: "goodbye", text: "goodbye", want: intent.IntentGoodbye},
		{name: "empty", text: "", want: intent.IntentUnknown},
		{name: "no keyword", text: "play some jazz", want: intent.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text).Intent)
		})
	}
}

func TestKeywordClassifier_Precedence(t *testing.T) {
	c := intent.New()

	t.Run("weather beats thanks", func(t *testing.T) {
		out := c.Classify("thanks for checking the weather")
		assert.Equal(t, intent.IntentWeather, out.Intent)
		assert.Equal(t, "weather", out.Keyword)
	})

	t.Run("news beats date", func(t *testing.T) {
		assert.Equal(t, intent.IntentNews, c.Classify("today's news").Intent)
	})

	t.Run("reminder beats time", func(t *testing.T) {
		assert.Equal(t, intent.IntentCreateReminder, c.Classify("remind me next time").Intent)
	})

	t.Run("substring match inside words", func(t *testing.T) {
		// "hi" occurs inside "this", so greeting wins over reminder.
		assert.Equal(t, intent.IntentGreeting, c.Classify("set a reminder for this").Intent)
	})
}

func TestKeywordClassifier_UnknownHasNoKeyword(t *testing.T) {
	out := intent.New().Classify("zzz")
	assert.Equal(t, intent.FallbackIntent, out.Intent)
	assert.Empty(t, out.Keyword)
}

func TestNewWithRules_CopiesRules(t *testing.T) {
	rules := []intent.Rule{{Intent: intent.IntentHelp, Keywords: []string{"sos"}}}
	c := intent.NewWithRules(rules)
	rules[0] = intent.Rule{Intent: intent.IntentGoodbye, Keywords: []string{"sos"}}

	assert.Equal(t, intent.IntentHelp, c.Classify("sos").Intent)
}
