package mandala

import (
	"regexp"
	"strings"

	"github.com/mindala/mindala/pkg/model"
)

// Closed-vocabulary taggers. Each theme has one word-boundary alternation
// tested independently against the lowercased transcript.
var (
	rePeace     = regexp.MustCompile(`\b(peace|calm|serene|tranquil|quiet|still|harmony|balance)\b`)
	reLove      = regexp.MustCompile(`\b(love|heart|compassion|kindness|warmth|tender|caring)\b`)
	reStrength  = regexp.MustCompile(`\b(strength|strong|power|courage|brave|resilient|overcome)\b`)
	reGrowth    = regexp.MustCompile(`\b(growth|grow|change|transform|bloom|blossom|journey|learn)\b`)
	reGratitude = regexp.MustCompile(`\b(gratitude|grateful|thankful|blessed|appreciate|appreciation)\b`)
)

// ExtractThemes tags the transcript with the emotional categories it
// mentions. Empty text yields no flags.
func ExtractThemes(text string) model.ThemeFlags {
	t := strings.ToLower(text)
	return model.ThemeFlags{
		Peace:     rePeace.MatchString(t),
		Love:      reLove.MatchString(t),
		Strength:  reStrength.MatchString(t),
		Growth:    reGrowth.MatchString(t),
		Gratitude: reGratitude.MatchString(t),
	}
}

// DetermineStyle picks the structural style for a prompt. Rules are checked
// in a fixed priority order and the first match wins.
func DetermineStyle(prompt string) model.StyleTag {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "dot") || strings.Contains(p, "aboriginal"):
		return model.StyleDotPainting
	case strings.Contains(p, "geometric") || strings.Contains(p, "sacred"):
		return model.StyleSacred
	case strings.Contains(p, "flower") || strings.Contains(p, "petal"):
		return model.StyleFloral
	default:
		return model.StyleGeometric
	}
}

// MoodProfile is the numeric-to-language mapping of a biometric sample. It
// feeds prompt construction only; the composer never reads it.
type MoodProfile struct {
	Focus    string
	Tone     string
	Ethereal bool
}

// MoodOf maps a sample to prompt descriptors. 70 and 30 bound the middle
// band inclusively; signal quality below 50 adds the ethereal modifier
// without touching the other two axes.
func MoodOf(sample model.BiometricSample) MoodProfile {
	b := sample.Clamp()

	mood := MoodProfile{
		Focus: "balanced forms",
		Tone:  "balanced tones",
	}

	if b.Attention > 70 {
		mood.Focus = "precise, sharp lines"
	} else if b.Attention < 30 {
		mood.Focus = "flowing, soft curves"
	}

	if b.Meditation > 70 {
		mood.Tone = "calm, deep colors"
	} else if b.Meditation < 30 {
		mood.Tone = "energetic, vibrant colors"
	}

	if b.SignalQuality < 50 {
		mood.Ethereal = true
	}

	return mood
}

// Descriptors returns the prompt fragments for the mood in a fixed order.
func (m MoodProfile) Descriptors() []string {
	d := []string{m.Focus, m.Tone}
	if m.Ethereal {
		d = append(d, "ethereal, mystical atmosphere")
	}
	return d
}
