package database

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	likemodels "vidtube/internal/api/like/models"
	subscriptionmodels "vidtube/internal/api/subscription/models"
)

func optionsIndexUnique() *options.IndexOptions {
	return options.Index().SetUnique(true)
}

func optionsIndexPlain() *options.IndexOptions {
	return options.Index()
}

func TestParseIndexTag(t *testing.T) {
	t.Run("single config", func(t *testing.T) {
		configs := parseIndexTag("unique")
		assert.Len(t, configs, 1)
		_, ok := configs[0]["unique"]
		assert.True(t, ok)
	})

	t.Run("unique with sparse", func(t *testing.T) {
		configs := parseIndexTag("unique,sparse")
		assert.Len(t, configs, 1)
		_, hasUnique := configs[0]["unique"]
		_, hasSparse := configs[0]["sparse"]
		assert.True(t, hasUnique)
		assert.True(t, hasSparse)
	})

	t.Run("multiple configs", func(t *testing.T) {
		configs := parseIndexTag("text;single,order:-1")
		assert.Len(t, configs, 2)
		_, hasText := configs[0]["text"]
		assert.True(t, hasText)
		assert.Equal(t, "-1", configs[1]["order"])
	})

	t.Run("ttl value", func(t *testing.T) {
		configs := parseIndexTag("ttl:3600")
		assert.Equal(t, "3600", configs[0]["ttl"])
	})

	t.Run("compound with partial", func(t *testing.T) {
		configs := parseIndexTag("compound:video_liked_unique,partial:video")
		assert.Equal(t, "video_liked_unique", configs[0]["compound"])
		assert.Equal(t, "video", configs[0]["partial"])
	})
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, -1, parseOrder("single,order:-1"))
	assert.Equal(t, 1, parseOrder("single"))
	assert.Equal(t, 1, parseOrder("single,order:1"))
}

func TestPartialExistsFilter(t *testing.T) {
	filter := partialExistsFilter("video")
	assert.Len(t, filter, 1)
	assert.Equal(t, "video", filter[0].Key)
	assert.Equal(t, bson.D{{Key: "$exists", Value: true}}, filter[0].Value)

	filter = partialExistsFilter("video|likedBy")
	assert.Len(t, filter, 2)
	assert.Equal(t, "likedBy", filter[1].Key)
}

// Unique index trên likes và subscriptions giữ bất biến mỗi cặp
// (target, người dùng) chỉ có một join record; toggle dựa vào lỗi
// duplicate key từ các index này để phân thắng bại khi đua nhau.
func TestCollectCompoundSpecs_LikeUniquePairs(t *testing.T) {
	specs := collectCompoundSpecs(reflect.TypeOf(likemodels.Like{}))

	cases := []struct {
		group   string
		target  string
		partial string
	}{
		{"like_video_unique", "video", "video"},
		{"like_comment_unique", "comment", "comment"},
		{"like_tweet_unique", "tweet", "tweet"},
	}
	for _, tc := range cases {
		spec, ok := specs[tc.group]
		require.True(t, ok, "thiếu compound index %s", tc.group)
		assert.True(t, spec.unique)
		assert.Equal(t, tc.partial, spec.partial)
		require.Len(t, spec.keys, 2)
		assert.Equal(t, tc.target, spec.keys[0].Key)
		assert.Equal(t, "likedBy", spec.keys[1].Key)
	}
}

func TestCollectCompoundSpecs_SubscriptionUniquePair(t *testing.T) {
	specs := collectCompoundSpecs(reflect.TypeOf(subscriptionmodels.Subscription{}))

	spec, ok := specs["subscriber_channel_unique"]
	require.True(t, ok)
	assert.True(t, spec.unique)
	assert.Empty(t, spec.partial)
	require.Len(t, spec.keys, 2)
	assert.Equal(t, "subscriber", spec.keys[0].Key)
	assert.Equal(t, "channel", spec.keys[1].Key)
}

func TestCompareIndex(t *testing.T) {
	t.Run("matching keys and unique", func(t *testing.T) {
		existing := bson.M{
			"key":    bson.M{"email": int32(1)},
			"unique": true,
		}
		keys := bson.D{{Key: "email", Value: 1}}
		opts := optionsIndexUnique()
		assert.True(t, compareIndex(existing, keys, opts))
	})

	t.Run("existing not unique but wanted unique", func(t *testing.T) {
		existing := bson.M{
			"key": bson.M{"email": int32(1)},
		}
		keys := bson.D{{Key: "email", Value: 1}}
		opts := optionsIndexUnique()
		assert.False(t, compareIndex(existing, keys, opts))
	})

	t.Run("different key order", func(t *testing.T) {
		existing := bson.M{
			"key": bson.M{"createdAt": int32(1)},
		}
		keys := bson.D{{Key: "createdAt", Value: -1}}
		assert.False(t, compareIndex(existing, keys, optionsIndexPlain()))
	})

	t.Run("partial filter added later", func(t *testing.T) {
		existing := bson.M{
			"key":    bson.M{"video": int32(1), "likedBy": int32(1)},
			"unique": true,
		}
		keys := bson.D{{Key: "video", Value: 1}, {Key: "likedBy", Value: 1}}
		opts := optionsIndexUnique().SetPartialFilterExpression(partialExistsFilter("video"))
		assert.False(t, compareIndex(existing, keys, opts))
	})
}
