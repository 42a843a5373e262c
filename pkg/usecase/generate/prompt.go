package generate

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/utils/logging"
	"google.golang.org/genai"
)

//go:embed prompt/system.md
var systemPrompt string

const promptAttempts = 3

// ErrMalformedResponse marks a remote reply that came back without the
// fields the contract requires. Treated like any other remote failure.
var ErrMalformedResponse = goerr.New("malformed response from remote collaborator")

type promptResponse struct {
	Prompt string `json:"prompt"`
}

// requestPrompt asks the remote text collaborator for an image prompt, up to
// promptAttempts times with exponential back-off, then falls back to the
// local template. It never fails.
func (u *UseCase) requestPrompt(ctx context.Context, input Input) string {
	logger := logging.From(ctx)

	if u.gemini == nil {
		return u.fallbackPrompt(input)
	}

	request := buildPromptRequest(input)
	for attempt := 0; attempt < promptAttempts; attempt++ {
		prompt, err := u.tryPrompt(ctx, request)
		if err == nil {
			return prompt
		}
		logger.Warn("remote prompt generation failed",
			"attempt", attempt+1, "error", err)

		if attempt < promptAttempts-1 {
			u.sleep(time.Duration(1<<attempt) * time.Second)
		}
	}

	logger.Info("remote prompt attempts exhausted, using local template")
	return u.fallbackPrompt(input)
}

func (u *UseCase) tryPrompt(ctx context.Context, request string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, ""),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"prompt": {Type: genai.TypeString},
			},
			Required: []string{"prompt"},
		},
	}

	resp, err := u.gemini.GenerateContent(ctx, genai.Text(request), config)
	if err != nil {
		return "", err
	}

	text := firstText(resp)
	if text == "" {
		return "", goerr.Wrap(ErrMalformedResponse, "no text part in response")
	}

	var parsed promptResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", goerr.Wrap(ErrMalformedResponse, "response is not valid JSON")
	}
	if parsed.Prompt == "" {
		return "", goerr.Wrap(ErrMalformedResponse, "prompt field is missing")
	}

	return parsed.Prompt, nil
}

// buildPromptRequest renders the user instruction for the remote text model.
func buildPromptRequest(input Input) string {
	var b strings.Builder

	b.WriteString("Create an image generation prompt for a mandala based on this meditation session.\n\n")
	b.WriteString("Transcript:\n")
	if input.Transcript == "" {
		b.WriteString("(none)\n")
	} else {
		b.WriteString(input.Transcript + "\n")
	}

	if input.Sample != nil {
		fmt.Fprintf(&b, "\nBiometrics: attention=%d meditation=%d signalQuality=%d\n",
			input.Sample.Attention, input.Sample.Meditation, input.Sample.SignalQuality)
		mood := mandala.MoodOf(*input.Sample)
		b.WriteString("Visual mood: " + strings.Join(mood.Descriptors(), "; ") + "\n")
	}

	if themes := mandala.ExtractThemes(input.Transcript); themes.Any() {
		b.WriteString("Detected themes: " + strings.Join(themes.Names(), ", ") + "\n")
	}

	return b.String()
}

// fallbackPrompt builds the deterministic template prompt used when the
// remote path is unavailable. Section order matters: style, mood, themes,
// palette.
func (u *UseCase) fallbackPrompt(input Input) string {
	style := mandala.DetermineStyle(input.Transcript)
	themes := mandala.ExtractThemes(input.Transcript)
	palette := u.palettes.Select(input.Transcript)

	parts := []string{
		fmt.Sprintf("A %s mandala with radial symmetry and a centered composition", style),
	}

	if input.Sample != nil {
		mood := mandala.MoodOf(*input.Sample)
		parts = append(parts, mood.Descriptors()...)
	}

	if themes.Any() {
		parts = append(parts, "expressing "+strings.Join(themes.Names(), " and "))
	} else {
		parts = append(parts, "expressing inner stillness")
	}

	parts = append(parts, fmt.Sprintf("rendered in the %s palette", palette.Name))

	return strings.Join(parts, ", ")
}

// firstText returns the first non-empty text part of a response.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}
