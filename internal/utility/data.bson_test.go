package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap(t *testing.T) {
	type video struct {
		Title string `bson:"title"`
		Views int64  `bson:"views"`
	}

	m, err := ToMap(video{Title: "Go concurrency", Views: 42})
	require.NoError(t, err)
	assert.Equal(t, "Go concurrency", m["title"])
	assert.EqualValues(t, 42, m["views"])
}

func TestToMap_OmitEmpty(t *testing.T) {
	type update struct {
		FullName string `bson:"fullName,omitempty"`
		Email    string `bson:"email,omitempty"`
	}

	m, err := ToMap(update{FullName: "Nguyễn Văn A"})
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn A", m["fullName"])
	// omitempty loại trường rỗng khỏi map
	_, hasEmail := m["email"]
	assert.False(t, hasEmail)
}
