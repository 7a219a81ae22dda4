// Package sniff decides what a downloaded file really is by looking at its
// bytes. Declared Content-Type headers and URL extensions are never consulted.
package sniff

import (
	"bytes"
	"fmt"
	"image/gif"
	"net/http"
	"strings"

	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// MediaTypeGIF is the only media type gifgrab accepts.
const MediaTypeGIF = "image/gif"

// Classify returns the media type implied by the leading bytes of data,
// using the WHATWG MIME sniffing algorithm. Parameters such as charset are
// stripped so the result can be compared directly.
func Classify(data []byte) string {
	mediaType, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return strings.TrimSpace(mediaType)
}

// IsAcceptable reports whether mediaType is the supported animated image format.
func IsAcceptable(mediaType string) bool {
	return mediaType == MediaTypeGIF
}

// Validator checks downloaded bytes before they are cached.
type Validator struct{}

// Validate returns an error wrapping errors.ErrUnknownFile when data does not
// sniff as a GIF.
func (Validator) Validate(data []byte) error {
	mediaType := Classify(data)
	if !IsAcceptable(mediaType) {
		return fmt.Errorf("detected %s: %w", mediaType, errors.ErrUnknownFile)
	}
	return nil
}

// Info describes a decoded GIF.
type Info struct {
	Frames    int
	Width     int
	Height    int
	LoopCount int
	Animated  bool
}

// Inspect fully decodes data as a GIF and reports its frame count and logical
// screen size.
func Inspect(data []byte) (*Info, error) {
	if err := (Validator{}).Validate(data); err != nil {
		return nil, err
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode gif")
	}
	return &Info{
		Frames:    len(g.Image),
		Width:     g.Config.Width,
		Height:    g.Config.Height,
		LoopCount: g.LoopCount,
		Animated:  len(g.Image) > 1,
	}, nil
}
