package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testModel struct{}
type testCreate struct{}
type testUpdate struct{}

func newTestHandler() *BaseHandler[testModel, testCreate, testUpdate] {
	return NewBaseHandler[testModel, testCreate, testUpdate](nil)
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{"password": "x"})
	assert.Error(t, err)
}

func TestValidateFilter_DisallowedOperator(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{
		"title": map[string]interface{}{"$where": "1"},
	})
	assert.Error(t, err)
}

func TestValidateFilter_AllowedOperator(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{
		"views": map[string]interface{}{"$gte": 100},
	})
	assert.NoError(t, err)
}

func TestValidateFilter_TooManyFields(t *testing.T) {
	h := newTestHandler()
	filter := map[string]interface{}{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		filter[k] = 1
	}
	assert.Error(t, h.validateFilter(filter))
}

func TestNormalizeFilter_ObjectIDFields(t *testing.T) {
	h := newTestHandler()
	hex := "64f1a2b3c4d5e6f7a8b9c0d1"

	normalized := h.normalizeFilter(map[string]interface{}{
		"_id":     hex,
		"videoId": hex,
		"title":   hex, // không phải ID field, giữ nguyên string
	})

	wantID, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	assert.Equal(t, wantID, normalized["_id"])
	assert.Equal(t, wantID, normalized["videoId"])
	assert.Equal(t, hex, normalized["title"])
}

func TestNormalizeFilter_ExtendedJSON(t *testing.T) {
	h := newTestHandler()
	hex := "64f1a2b3c4d5e6f7a8b9c0d1"

	normalized := h.normalizeFilter(map[string]interface{}{
		"owner": map[string]interface{}{"$oid": hex},
	})

	wantID, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, wantID, normalized["owner"])
}

func TestNormalizeFilter_InOperator(t *testing.T) {
	h := newTestHandler()
	hex := "64f1a2b3c4d5e6f7a8b9c0d1"

	normalized := h.normalizeFilter(map[string]interface{}{
		"videoId": map[string]interface{}{
			"$in": []interface{}{hex, "khong-phai-oid"},
		},
	})

	inner := normalized["videoId"].(map[string]interface{})
	arr := inner["$in"].([]interface{})
	wantID, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, wantID, arr[0])
	assert.Equal(t, "khong-phai-oid", arr[1])
}
