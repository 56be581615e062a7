package audio

import (
	"context"
	"time"
)

// UseCase manages synthesized speech artifacts and speech recognition.
type UseCase interface {
	// Sweep removes .mp3 artifacts older than the retention window at now.
	// Names that do not parse and files that cannot be removed are skipped.
	Sweep(ctx context.Context, now time.Time) (SweepOutput, error)

	// Speak synthesizes text into a new artifact.
	Speak(ctx context.Context, input SpeakInput) (SpeakOutput, error)

	// Transcribe turns recorded audio into text. ErrNotUnderstood is returned
	// when the recognizer produced no transcript.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer converts text to MP3 bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Recognizer converts recorded audio to text. An empty transcript means the
// speech was not understood.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte) (string, error)
}
