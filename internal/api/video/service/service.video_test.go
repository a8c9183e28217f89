package videosvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "vidtube/internal/api/video/models"
	"vidtube/internal/media"
)

func TestListFilter_MergesClientFilter(t *testing.T) {
	owner := primitive.NewObjectID()

	filter := listFilter(owner, "golang", map[string]interface{}{
		"views": map[string]interface{}{"$gte": 100},
	})

	assert.Equal(t, true, filter["isPublished"])
	assert.Equal(t, owner, filter["owner"])
	assert.Equal(t, bson.M{"$regex": "golang", "$options": "i"}, filter["title"])
	assert.Equal(t, map[string]interface{}{"$gte": 100}, filter["views"])
}

func TestListFilter_ClientCannotOverrideGuards(t *testing.T) {
	owner := primitive.NewObjectID()

	filter := listFilter(owner, "", map[string]interface{}{
		"isPublished": false,
		"owner":       primitive.NewObjectID(),
	})

	// Điều kiện chuẩn gán sau nên luôn thắng filter của client
	assert.Equal(t, true, filter["isPublished"])
	assert.Equal(t, owner, filter["owner"])
}

func TestListFilter_EmptyExtra(t *testing.T) {
	filter := listFilter(primitive.NilObjectID, "", nil)

	assert.Equal(t, bson.M{"isPublished": true}, filter)
}

func TestPatchedVideo(t *testing.T) {
	previous := models.Video{
		Title:       "Tên cũ",
		Description: "Mô tả cũ",
		Thumbnail:   media.Asset{URL: "http://old", Key: "old-key"},
		Views:       7,
		UpdatedAt:   100,
	}

	newThumb := media.Asset{URL: "http://new", Key: "new-key"}
	set := map[string]interface{}{
		"title":     "Tên mới",
		"thumbnail": newThumb,
		"updatedAt": int64(200),
	}

	updated := patchedVideo(previous, set)

	assert.Equal(t, "Tên mới", updated.Title)
	assert.Equal(t, newThumb, updated.Thumbnail)
	assert.EqualValues(t, 200, updated.UpdatedAt)
	// Trường không nằm trong set giữ nguyên giá trị Before
	assert.Equal(t, "Mô tả cũ", updated.Description)
	assert.EqualValues(t, 7, updated.Views)
}

func TestPatchedVideo_PartialSet(t *testing.T) {
	previous := models.Video{
		Title:       "Giữ nguyên",
		Description: "Mô tả cũ",
		Thumbnail:   media.Asset{Key: "old-key"},
	}

	updated := patchedVideo(previous, map[string]interface{}{
		"description": "Mô tả mới",
		"updatedAt":   int64(300),
	})

	assert.Equal(t, "Giữ nguyên", updated.Title)
	assert.Equal(t, "Mô tả mới", updated.Description)
	assert.Equal(t, "old-key", updated.Thumbnail.Key)
}
