package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Hachi2308/coloring/internal/generation"
)

func imageResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestImageDataURIFromResponse(t *testing.T) {
	t.Parallel()

	t.Run("first inline image wins", func(t *testing.T) {
		t.Parallel()

		resp := imageResponse(
			&genai.Part{Text: "here is your page"},
			&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("pixels")}},
		)

		uri, err := imageDataURIFromResponse(resp)
		require.NoError(t, err)

		mimeType, data, err := parseDataURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
		assert.Equal(t, []byte("pixels"), data)
	})

	t.Run("text-only response has no image", func(t *testing.T) {
		t.Parallel()

		_, err := imageDataURIFromResponse(imageResponse(&genai.Part{Text: "sorry"}))
		assert.ErrorIs(t, err, ErrNoImageData)
	})

	t.Run("nil response and empty candidates are invalid", func(t *testing.T) {
		t.Parallel()

		_, err := imageDataURIFromResponse(nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)

		_, err = imageDataURIFromResponse(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("safety block maps to content blocked", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{FinishReason: genai.FinishReasonSafety},
			},
		}
		_, err := imageDataURIFromResponse(resp)
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
	})

	t.Run("candidate without content is invalid", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}
		_, err := imageDataURIFromResponse(resp)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}
