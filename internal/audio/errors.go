package audio

import "errors"

var (
	ErrEmptyText     = errors.New("text is empty")
	ErrEmptyAudio    = errors.New("audio is empty")
	ErrNotUnderstood = errors.New("speech was not understood")
	ErrInvalidAudio  = errors.New("synthesized audio is not valid mp3")
	ErrSynthesis     = errors.New("speech synthesis failed")
	ErrRecognition   = errors.New("speech recognition service failed")
	ErrNoSynthesizer = errors.New("speech synthesis is not configured")
	ErrNoRecognizer  = errors.New("speech recognition is not configured")
)
