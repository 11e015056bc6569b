package main

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferenceImages(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		refs, err := loadReferenceImages("")
		require.NoError(t, err)
		assert.Nil(t, refs)
	})

	t.Run("encodes files and passes data URIs through", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ref.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o644))

		refs, err := loadReferenceImages(path + ", data:image/png;base64,QUJD")
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t,
			"data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")),
			refs[0])
		assert.Equal(t, "data:image/png;base64,QUJD", refs[1])
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		_, err := loadReferenceImages("/no/such/file.png")
		assert.Error(t, err)
	})
}

func TestMimeTypeForFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/jpeg", mimeTypeForFile("a.JPG"))
	assert.Equal(t, "image/webp", mimeTypeForFile("b.webp"))
	assert.Equal(t, "image/png", mimeTypeForFile("c.png"))
	assert.Equal(t, "image/png", mimeTypeForFile("noext"))
}
