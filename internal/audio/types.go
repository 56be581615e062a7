package audio

import "time"

// SweepOutput counts the outcome of one sweep over the artifact directory.
// Skipped covers unparsable names and failed removals.
type SweepOutput struct {
	Deleted int
	Skipped int
	Kept    int
}

type SpeakInput struct {
	Text string
}

// SpeakOutput describes a stored artifact. URL is relative to the server root.
type SpeakOutput struct {
	Artifact Artifact
	URL      string
	Duration time.Duration
}
