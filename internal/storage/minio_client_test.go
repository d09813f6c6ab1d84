package storage

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"womenhub/internal/config"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
)

func TestInspectImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		size    int64
		wantExt string
		wantErr error
	}{
		{name: "png", data: pngHeader, wantExt: ".png"},
		{name: "gif", data: gifHeader, wantExt: ".gif"},
		{name: "jpeg", data: jpegHeader, wantExt: ".jpg"},
		{name: "pdf", data: []byte("%PDF-1.7\n1 0 obj"), wantErr: ErrUnsupportedType},
		{name: "text", data: []byte("hello world"), wantErr: ErrUnsupportedType},
		{name: "empty", data: nil, wantErr: ErrEmpty},
		{name: "too large", data: pngHeader, size: 6 << 20, wantErr: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tt.size
			if size == 0 {
				size = int64(len(tt.data))
			}

			body, mt, err := inspectImage(bytes.NewReader(tt.data), size, 5<<20)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, mt.Extension())

			replayed, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, tt.data, replayed)
		})
	}
}

func TestInspectImage_LongBodyIsReplayed(t *testing.T) {
	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x42}, 10_000)...)

	body, _, err := inspectImage(bytes.NewReader(data), int64(len(data)), 0)
	require.NoError(t, err)

	replayed, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, data, replayed)
}

func TestObjectName(t *testing.T) {
	name := objectName("/stories/", time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), ".png")

	assert.Regexp(t, regexp.MustCompile(`^stories/2026/04/[0-9a-f-]{36}\.png$`), name)
}

func TestGetImageURL_Presigned(t *testing.T) {
	m, err := newMinIOClient(config.MinIO{
		Endpoint:   "localhost:9000",
		AccessKey:  "minioadmin",
		SecretKey:  "minioadmin",
		BucketName: "stories",
		Region:     "us-east-1",
		URLExpiry:  time.Hour,
	}, 5<<20)
	require.NoError(t, err)

	url, err := m.GetImageURL(context.Background(), "stories/2026/04/a.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/stories/stories/2026/04/a.png?"), url)
	assert.Contains(t, url, "X-Amz-Expires=3600")
}

func TestNewMinIOClient_ExpiryCapped(t *testing.T) {
	m, err := newMinIOClient(config.MinIO{Endpoint: "localhost:9000", BucketName: "b", URLExpiry: 30 * 24 * time.Hour}, 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, m.expiry)
}
