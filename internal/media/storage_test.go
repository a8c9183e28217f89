package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		path    string
		kind    Kind
		want    string
		wantErr bool
	}{
		{"/tmp/1699999999-clip.mp4", KindVideo, "video/mp4", false},
		{"/tmp/1699999999-clip.WEBM", KindVideo, "video/webm", false},
		{"/tmp/1699999999-avatar.jpg", KindImage, "image/jpeg", false},
		{"/tmp/1699999999-avatar.png", KindImage, "image/png", false},
		// Ảnh upload vào bucket video
		{"/tmp/1699999999-avatar.png", KindVideo, "", true},
		// Định dạng lạ
		{"/tmp/1699999999-doc.pdf", KindImage, "", true},
		{"/tmp/khong-co-duoi", KindVideo, "", true},
	}

	for _, tt := range tests {
		got, err := contentTypeFor(tt.path, tt.kind)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "1699999999-clip.mp4", objectKey("/tmp/uploads/1699999999-clip.mp4"))
	assert.Equal(t, "a.png", objectKey("a.png"))
}
