package model

import "strconv"

// BiometricSample is a single reading from the headset. All values are
// percentages in [0, 100]; the sample is read-only once constructed.
type BiometricSample struct {
	Attention     int `json:"attention"`
	Meditation    int `json:"meditation"`
	SignalQuality int `json:"signalQuality"`
}

// Clamp returns a copy with every field forced into [0, 100].
func (b BiometricSample) Clamp() BiometricSample {
	return BiometricSample{
		Attention:     clampPercent(b.Attention),
		Meditation:    clampPercent(b.Meditation),
		SignalQuality: clampPercent(b.SignalQuality),
	}
}

// Digits returns the three fields as concatenated decimal digits, in
// attention, meditation, signal quality order. Used by seed derivation.
func (b BiometricSample) Digits() string {
	return strconv.Itoa(b.Attention) + strconv.Itoa(b.Meditation) + strconv.Itoa(b.SignalQuality)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
