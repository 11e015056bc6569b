package gemini

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		payload := base64.StdEncoding.EncodeToString([]byte("pixels"))
		mimeType, data, err := parseDataURI("data:image/jpeg;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", mimeType)
		assert.Equal(t, []byte("pixels"), data)
	})

	t.Run("defaults mime type", func(t *testing.T) {
		t.Parallel()

		payload := base64.StdEncoding.EncodeToString([]byte("x"))
		mimeType, _, err := parseDataURI("data:;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("rejects non data URIs", func(t *testing.T) {
		t.Parallel()

		for _, uri := range []string{
			"https://example.com/cat.png",
			"data:image/png;base64",
			"data:image/png,plain-text",
			"data:image/png;base64,!!!not-base64!!!",
		} {
			_, _, err := parseDataURI(uri)
			assert.ErrorIs(t, err, ErrBadDataURI, uri)
		}
	})
}

func TestFormatDataURIRoundTrip(t *testing.T) {
	t.Parallel()

	uri := formatDataURI("image/png", []byte{0x89, 0x50, 0x4E, 0x47})
	mimeType, data, err := parseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data)
}
