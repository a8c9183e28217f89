package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_PlainStruct(t *testing.T) {
	type update struct {
		Title string `bson:"title"`
	}

	data, err := ToUpdateData(update{Title: "Video mới"})
	require.NoError(t, err)
	assert.Equal(t, "Video mới", data.Set["title"])
	assert.Nil(t, data.Inc)
}

func TestToUpdateData_PassThrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"title": "x"}}
	data, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Same(t, original, data)

	byValue, err := ToUpdateData(UpdateData{Inc: map[string]interface{}{"views": 1}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, byValue.Inc["views"])
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	raw := map[string]interface{}{
		"$inc":      map[string]interface{}{"views": 1},
		"$addToSet": map[string]interface{}{"watchHistory": "abc"},
	}
	data, err := ToUpdateData(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 1, data.Inc["views"])
	assert.Equal(t, "abc", data.AddToSet["watchHistory"])
	assert.Nil(t, data.Set)
}

func TestNormalizePage(t *testing.T) {
	assert.EqualValues(t, 1, NormalizePage(0))
	assert.EqualValues(t, 1, NormalizePage(-5))
	assert.EqualValues(t, 3, NormalizePage(3))
}

func TestNormalizeLimit(t *testing.T) {
	assert.EqualValues(t, 10, NormalizeLimit(0, 10, 50))
	assert.EqualValues(t, 10, NormalizeLimit(-1, 10, 50))
	assert.EqualValues(t, 10, NormalizeLimit(51, 10, 50))
	assert.EqualValues(t, 50, NormalizeLimit(50, 10, 50))
	assert.EqualValues(t, 25, NormalizeLimit(25, 10, 50))
}
