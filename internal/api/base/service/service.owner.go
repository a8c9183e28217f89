package basesvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerScoped xây filter mutation theo chủ sở hữu: {_id, owner}.
// Dùng cho các thao tác find-and-modify chỉ chủ sở hữu được phép.
// Không khớp nghĩa là resource không tồn tại HOẶC thuộc người khác,
// cả hai trường hợp đều trả về NotFound — không tách thành Forbidden
// để không lộ thông tin resource của người khác.
func OwnerScoped(id, owner primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "owner": owner}
}
