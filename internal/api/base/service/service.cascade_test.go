package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCascadeTag(t *testing.T) {
	type video struct {
		ID   string `bson:"_id"`
		Deps string `relationship:"collection:comments,field:video,cascade:true|collection:likes,field:video,cascade:true"`
	}

	rules := ParseCascadeTag(reflect.TypeOf(video{}))
	require.Len(t, rules, 2)

	assert.Equal(t, "comments", rules[0].CollectionName)
	assert.Equal(t, "video", rules[0].FieldName)
	assert.True(t, rules[0].Cascade)

	assert.Equal(t, "likes", rules[1].CollectionName)
	assert.True(t, rules[1].Cascade)
}

func TestParseCascadeTag_Restrict(t *testing.T) {
	type channel struct {
		Deps string `relationship:"collection:videos,field:owner,message:Còn %d video thuộc kênh này"`
	}

	rules := ParseCascadeTag(reflect.TypeOf(channel{}))
	require.Len(t, rules, 1)
	assert.False(t, rules[0].Cascade)
	assert.Equal(t, "Còn %d video thuộc kênh này", rules[0].ErrorMessage)
}

func TestParseCascadeTag_IgnoresIncomplete(t *testing.T) {
	type broken struct {
		Deps string `relationship:"collection:likes"`
	}

	assert.Empty(t, ParseCascadeTag(reflect.TypeOf(broken{})))
}
