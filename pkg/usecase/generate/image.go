package generate

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/model"
	"github.com/mindala/mindala/pkg/utils/logging"
)

const (
	imageAttempts   = 2
	imageRetryDelay = 2 * time.Second
)

// ErrNoImagePart marks a structurally valid remote reply that carried no
// image bytes.
var ErrNoImagePart = goerr.New("remote response contains no image part")

// requestImage asks the remote image collaborator for an image, up to
// imageAttempts times with a fixed delay, then composes locally. Remote
// failures never surface; only persisting a remote image can fail.
func (u *UseCase) requestImage(ctx context.Context, prompt string, sample *model.BiometricSample) (*model.MandalaArtifact, error) {
	logger := logging.From(ctx)

	if u.gemini != nil {
		for attempt := 0; attempt < imageAttempts; attempt++ {
			if attempt > 0 {
				u.sleep(imageRetryDelay)
			}

			img, revised, err := u.tryImage(ctx, prompt)
			if err != nil {
				logger.Warn("remote image generation failed",
					"attempt", attempt+1, "error", err)
				continue
			}

			path, err := u.saveImage(ctx, img)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to persist remote image")
			}

			return &model.MandalaArtifact{
				ID:            model.NewArtifactID(),
				ImageURL:      path,
				Prompt:        prompt,
				RevisedPrompt: revised,
				Source:        model.SourceRemote,
				CreatedAt:     u.now(),
			}, nil
		}

		logger.Info("remote image attempts exhausted, composing locally")
	}

	svgBytes := mandala.ComposeSVG(prompt, sample, u.palettes)

	return &model.MandalaArtifact{
		ID:        model.NewArtifactID(),
		ImageURL:  mandala.DataURI(svgBytes),
		Prompt:    prompt,
		Source:    model.SourceLocal,
		CreatedAt: u.now(),
	}, nil
}

// tryImage extracts the first inline image part and any descriptive text
// from one remote attempt. The response shape is untrusted; every field is
// checked before use.
func (u *UseCase) tryImage(ctx context.Context, prompt string) ([]byte, string, error) {
	resp, err := u.gemini.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, "", err
	}

	var img []byte
	var text string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch {
			case part.InlineData != nil && len(part.InlineData.Data) > 0 && img == nil:
				img = part.InlineData.Data
			case part.Text != "" && text == "":
				text = part.Text
			}
		}
	}

	if img == nil {
		return nil, "", goerr.Wrap(ErrNoImagePart, "checked all content parts")
	}

	return img, text, nil
}
