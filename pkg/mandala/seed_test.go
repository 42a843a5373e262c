package mandala_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/model"
)

func TestDeriveSeedStable(t *testing.T) {
	sample := &model.BiometricSample{Attention: 72, Meditation: 40, SignalQuality: 90}

	a := mandala.DeriveSeed("a quiet morning by the sea", sample)
	b := mandala.DeriveSeed("a quiet morning by the sea", sample)
	gt.Equal(t, a, b)
}

func TestDeriveSeedEmpty(t *testing.T) {
	gt.Equal(t, mandala.DeriveSeed("", nil), uint32(0))
}

func TestDeriveSeedDependsOnInputs(t *testing.T) {
	sample := &model.BiometricSample{Attention: 50, Meditation: 50, SignalQuality: 100}

	base := mandala.DeriveSeed("gratitude", sample)
	otherText := mandala.DeriveSeed("gratitude!", sample)
	otherSample := mandala.DeriveSeed("gratitude",
		&model.BiometricSample{Attention: 51, Meditation: 50, SignalQuality: 100})
	noSample := mandala.DeriveSeed("gratitude", nil)

	gt.True(t, base != otherText)
	gt.True(t, base != otherSample)
	gt.True(t, base != noSample)
}

func TestDeriveSeedKnownValues(t *testing.T) {
	// "a" is 97, "ab" is 97*31+98
	gt.Equal(t, mandala.DeriveSeed("a", nil), uint32(97))
	gt.Equal(t, mandala.DeriveSeed("ab", nil), uint32(97*31+98))
}
