package basesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"vidtube/internal/common"
)

// ToggleJoin đảo trạng thái của join record khớp pairFilter trên store.
// Xóa được nghĩa là trạng thái mới là inactive (false). Không có record
// thì insert doc; hai toggle đua nhau cùng insert sẽ có một bên dính lỗi
// duplicate key từ unique index và được giải bằng đúng một lần retry
// delete. Trả về true khi record vừa được tạo (trạng thái active).
func ToggleJoin[T any](ctx context.Context, store BaseServiceMongo[T], pairFilter bson.M, doc T) (bool, error) {
	_, err := store.FindOneAndDelete(ctx, pairFilter, nil)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, err
	}

	if _, err := store.InsertOne(ctx, doc); err != nil {
		// Duplicate key: toggle khác vừa insert xong, retry delete một lần
		if errors.Is(err, common.ErrMongoDuplicate) {
			if _, delErr := store.FindOneAndDelete(ctx, pairFilter, nil); delErr == nil {
				return false, nil
			} else if !errors.Is(delErr, common.ErrNotFound) {
				return false, delErr
			}
		}
		return false, err
	}
	return true, nil
}
