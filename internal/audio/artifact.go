package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Extension is the file suffix of every speech artifact.
const Extension = ".mp3"

// maxStemSeconds bounds parsed timestamps to values time.Unix can represent.
const maxStemSeconds = 1 << 40

// Artifact is a synthesized speech file. On disk its name starts with the
// creation time in decimal Unix seconds, so age can be read from the name alone.
type Artifact struct {
	ID        string
	CreatedAt time.Time
}

// FileName renders "<seconds>.<micros>-<id>.mp3", or "<seconds>.<micros>.mp3"
// when ID is empty.
func (a Artifact) FileName() string {
	ts := a.CreatedAt.UnixMicro()
	name := fmt.Sprintf("%d.%06d", ts/1e6, ts%1e6)
	if a.ID != "" {
		name += "-" + a.ID
	}
	return name + Extension
}

// ParseFileName recovers an Artifact from a file name. The text before the
// first "." is the timestamp in seconds, so "100.mp3" and
// "1700000000.123456-ab12.mp3" both parse. ok is false for non-.mp3 names and
// for stems that are not finite numbers.
func ParseFileName(name string) (Artifact, bool) {
	if !strings.HasSuffix(name, Extension) {
		return Artifact{}, false
	}
	stem, rest, _ := strings.Cut(name, ".")
	secs, err := strconv.ParseFloat(stem, 64)
	if err != nil || math.IsNaN(secs) || math.Abs(secs) > maxStemSeconds {
		return Artifact{}, false
	}

	whole := int64(secs)
	nanos := int64((secs - float64(whole)) * 1e9)

	rest = strings.TrimSuffix(rest, strings.TrimPrefix(Extension, "."))
	rest = strings.TrimSuffix(rest, ".")
	micros, id, _ := strings.Cut(rest, "-")
	if len(micros) == 6 {
		if us, err := strconv.ParseInt(micros, 10, 64); err == nil {
			nanos = us * 1e3
		}
	}

	return Artifact{ID: id, CreatedAt: time.Unix(whole, nanos)}, true
}

// Expired reports whether the artifact is strictly older than retention at now.
func (a Artifact) Expired(now time.Time, retention time.Duration) bool {
	return now.Sub(a.CreatedAt) > retention
}
