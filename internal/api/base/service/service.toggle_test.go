package basesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
)

type joinDoc struct {
	Key string
}

// fakeJoinStore giả lập collection join record với unique index:
// tối đa một record cho pairFilter, insert khi đã có trả về lỗi
// duplicate key như ConvertMongoError làm với Mongo thật.
type fakeJoinStore struct {
	BaseServiceMongo[joinDoc]

	exists  bool
	inserts int
	deletes int

	// dupOnce ép lần insert kế tiếp dính duplicate key và đặt exists,
	// mô phỏng toggle đua nhau vừa insert xong ngay trước mình
	dupOnce bool
}

func (f *fakeJoinStore) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (joinDoc, error) {
	f.deletes++
	if f.exists {
		f.exists = false
		return joinDoc{Key: "pair"}, nil
	}
	return joinDoc{}, common.ErrNotFound
}

func (f *fakeJoinStore) InsertOne(ctx context.Context, doc joinDoc) (joinDoc, error) {
	f.inserts++
	if f.dupOnce {
		f.dupOnce = false
		f.exists = true
		return joinDoc{}, common.ErrMongoDuplicate
	}
	if f.exists {
		return joinDoc{}, common.ErrMongoDuplicate
	}
	f.exists = true
	return doc, nil
}

func TestToggleJoin_AlternatesState(t *testing.T) {
	store := &fakeJoinStore{}
	filter := bson.M{"video": "v", "likedBy": "u"}

	// Chưa có record: toggle tạo mới, trạng thái active
	active, err := ToggleJoin[joinDoc](context.Background(), store, filter, joinDoc{Key: "pair"})
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, store.exists)

	// Đã có record: toggle xóa, trạng thái inactive
	active, err = ToggleJoin[joinDoc](context.Background(), store, filter, joinDoc{Key: "pair"})
	require.NoError(t, err)
	assert.False(t, active)
	assert.False(t, store.exists)

	// Toggle lần nữa quay lại active
	active, err = ToggleJoin[joinDoc](context.Background(), store, filter, joinDoc{Key: "pair"})
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, store.exists)
}

func TestToggleJoin_DeleteHitSkipsInsert(t *testing.T) {
	store := &fakeJoinStore{exists: true}

	active, err := ToggleJoin[joinDoc](context.Background(), store, bson.M{"k": 1}, joinDoc{})
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, 0, store.inserts)
	assert.Equal(t, 1, store.deletes)
}

func TestToggleJoin_DuplicateKeyRetriesDelete(t *testing.T) {
	// Record vắng mặt lúc delete nhưng toggle khác insert xong trước
	// mình: insert dính duplicate key, retry delete gỡ record đó ra
	// và trạng thái cuối là inactive
	store := &fakeJoinStore{dupOnce: true}

	active, err := ToggleJoin[joinDoc](context.Background(), store, bson.M{"k": 1}, joinDoc{})
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 2, store.deletes)
	assert.False(t, store.exists)
}

type vanishingJoinStore struct {
	fakeJoinStore
}

// InsertOne dính duplicate nhưng record biến mất trước lần retry delete
func (f *vanishingJoinStore) InsertOne(ctx context.Context, doc joinDoc) (joinDoc, error) {
	f.inserts++
	return joinDoc{}, common.ErrMongoDuplicate
}

func TestToggleJoin_RetryMissSurfacesDuplicate(t *testing.T) {
	store := &vanishingJoinStore{}

	_, err := ToggleJoin[joinDoc](context.Background(), store, bson.M{"k": 1}, joinDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMongoDuplicate)
	assert.Equal(t, 2, store.deletes)
}
