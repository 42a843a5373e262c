package mandala

import (
	"unicode/utf16"

	"github.com/mindala/mindala/pkg/model"
)

// DeriveSeed reduces a prompt text and an optional biometric sample to a
// stable 32-bit seed. The hash walks the UTF-16 code units of the text with
// the biometric digits appended, so the same inputs always map to the same
// seed across processes. The empty input yields seed 0.
func DeriveSeed(text string, sample *model.BiometricSample) uint32 {
	src := text
	if sample != nil {
		src += sample.Digits()
	}

	var h int32
	for _, cu := range utf16.Encode([]rune(src)) {
		h = h*31 + int32(cu)
	}
	if h < 0 {
		// negation of MinInt32 wraps, but the uint32 image is still stable
		h = -h
	}
	return uint32(h)
}
