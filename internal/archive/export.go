package archive

import (
	"archive/zip"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/Hachi2308/coloring/internal/domain"
)

const maxNameLength = 48

// ExportImages writes the given history entries into a zip archive at
// archivePath. Entries whose data URI cannot be decoded are skipped and
// reported in the returned list; one bad entry never aborts the export.
func ExportImages(archivePath string, images []*domain.GeneratedImage) ([]string, error) {
	zipFile, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() { _ = zipFile.Close() }()

	zipWriter := zip.NewWriter(zipFile)

	var failed []string
	for i, img := range images {
		data, ext, err := decodeImageDataURI(img.URL)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s (decode error: %v)", img.ID, err))
			continue
		}

		w, err := zipWriter.Create(entryName(i, img.Prompt, ext))
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s (zip error: %v)", img.ID, err))
			continue
		}
		if _, err := w.Write(data); err != nil {
			failed = append(failed, fmt.Sprintf("%s (write error: %v)", img.ID, err))
			continue
		}
	}

	if err := zipWriter.Close(); err != nil {
		return failed, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return failed, nil
}

// decodeImageDataURI extracts the raw bytes and a file extension from a
// base64 image data URI.
func decodeImageDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	mimeType, encoded := strings.CutSuffix(meta, ";base64")
	if !encoded {
		return nil, "", fmt.Errorf("payload is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}

	return data, extensionFor(mimeType), nil
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/jpg":
		return ".jpeg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// entryName builds a stable archive member name from the entry's position
// and a slug of its prompt.
func entryName(index int, prompt, ext string) string {
	slug := slugify(prompt)
	if slug == "" {
		slug = "page"
	}
	return fmt.Sprintf("%03d-%s%s", index+1, slug, ext)
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
		if b.Len() >= maxNameLength {
			break
		}
	}
	return strings.Trim(b.String(), "-")
}
