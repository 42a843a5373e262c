package model

import (
	"time"

	"github.com/google/uuid"
)

type ArtifactID string

// NewArtifactID generates a new unique ArtifactID
func NewArtifactID() ArtifactID {
	return ArtifactID(uuid.New().String())
}

// ArtifactSource records where the image came from. It carries no semantic
// weight beyond provenance; callers treat remote and local artifacts alike.
type ArtifactSource string

const (
	SourceRemote ArtifactSource = "remote"
	SourceLocal  ArtifactSource = "local"
)

// MandalaArtifact is the result of one generation request. ImageURL is either
// a relative file path (remote images persisted to disk) or an inline
// data URI (locally composed SVG). Immutable after creation.
type MandalaArtifact struct {
	ID            ArtifactID
	ImageURL      string
	Prompt        string
	RevisedPrompt string
	Source        ArtifactSource
	CreatedAt     time.Time
}
