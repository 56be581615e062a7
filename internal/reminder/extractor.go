package reminder

import "strings"

// TriggerPhrases mark the boundary before a reminder payload. More specific
// phrases come first because several are substrings of others.
var TriggerPhrases = []string{
	"remind me to ",
	"remind me ",
	"set a reminder to ",
	"set a reminder for ",
	"setting a reminder to ",
	"setting a reminder for ",
	"create a reminder to ",
	"reminder to ",
	"remember to ",
}

// FallbackKeyword triggers the loose extraction when no trigger phrase yields a payload.
const FallbackKeyword = "reminder"

// FallbackPrefixes are stripped (first match only) from the text following FallbackKeyword.
var FallbackPrefixes = []string{"about ", "for ", "to ", "that ", ": "}

// ExtractPayload returns the reminder content of a normalized command.
// ok is false when nothing usable follows the trigger.
func ExtractPayload(text string) (payload string, ok bool) {
	for _, phrase := range TriggerPhrases {
		if _, after, found := strings.Cut(text, phrase); found {
			payload = strings.TrimSpace(after)
			break
		}
	}

	if payload == "" {
		if _, after, found := strings.Cut(text, FallbackKeyword); found {
			payload = strings.TrimSpace(after)
			for _, prefix := range FallbackPrefixes {
				if strings.HasPrefix(payload, prefix) {
					payload = strings.TrimSpace(strings.TrimPrefix(payload, prefix))
					break
				}
			}
		}
	}

	payload = strings.TrimSpace(payload)
	return payload, payload != ""
}
