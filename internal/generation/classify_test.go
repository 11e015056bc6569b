package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "http 429 status",
			err:  errors.New("429 RESOURCE_EXHAUSTED: quota exceeded"),
			want: KindRateLimited,
		},
		{
			name: "too many requests phrase",
			err:  errors.New("Too many requests, slow down"),
			want: KindRateLimited,
		},
		{
			name: "http 403 status",
			err:  errors.New("403 PERMISSION_DENIED"),
			want: KindPermissionDenied,
		},
		{
			name: "invalid api key",
			err:  errors.New("API key not valid. Please pass a valid API key."),
			want: KindPermissionDenied,
		},
		{
			name: "entity not found",
			err:  errors.New("Requested entity was not found."),
			want: KindPermissionDenied,
		},
		{
			name: "rate limit wins over permission when both match",
			err:  errors.New("429 Too many requests (403 fallback)"),
			want: KindRateLimited,
		},
		{
			name: "network error",
			err:  errors.New("dial tcp: connection refused"),
			want: KindOther,
		},
		{
			name: "wrapped rate limit error",
			err:  fmt.Errorf("generate: %w", errors.New("429 back off")),
			want: KindRateLimited,
		},
		{
			name: "nil error",
			err:  nil,
			want: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rate_limited", KindRateLimited.String())
	assert.Equal(t, "permission_denied", KindPermissionDenied.String())
	assert.Equal(t, "other", KindOther.String())
}
