package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// bytesPerSample is the size of one decoded frame: 16-bit samples, two channels.
const bytesPerSample = 4

// ProbeMP3 decodes data as MP3 and returns its duration.
func ProbeMP3(data []byte) (time.Duration, error) {
	if len(data) == 0 {
		return 0, errors.New("no audio data")
	}
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decode mp3: %w", err)
	}
	rate := d.SampleRate()
	if rate <= 0 {
		return 0, fmt.Errorf("invalid sample rate %d", rate)
	}
	length := d.Length()
	if length < 0 {
		return 0, nil
	}
	samples := length / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(rate), nil
}
