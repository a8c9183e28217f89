package basesvc

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/common"
)

// CascadeRule định nghĩa một quan hệ phụ thuộc đọc từ struct tag của model.
// cascade:true nghĩa là record phụ thuộc bị xóa theo, ngược lại việc xóa
// bị chặn khi còn record tham chiếu.
type CascadeRule struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Cascade        bool
}

// ParseCascadeTag phân tích struct tag "relationship" để lấy các quan hệ phụ thuộc.
// Nhiều quan hệ trên một tag cách nhau bằng '|', mỗi quan hệ gồm các cặp
// key:value cách nhau bằng ','.
func ParseCascadeTag(structType reflect.Type) []CascadeRule {
	var rules []CascadeRule
	for i := 0; i < structType.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("relationship")
		if tag == "" {
			continue
		}
		rules = append(rules, parseCascadeTagValue(tag)...)
	}
	return rules
}

func parseCascadeTagValue(tagValue string) []CascadeRule {
	var rules []CascadeRule
	for _, part := range strings.Split(tagValue, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rule := CascadeRule{}
		for _, pair := range strings.Split(part, ",") {
			pair = strings.TrimSpace(pair)
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])
			switch key {
			case "collection":
				rule.CollectionName = value
			case "field":
				rule.FieldName = value
			case "message", "msg":
				rule.ErrorMessage = value
			case "cascade":
				rule.Cascade = value == "true" || value == "1"
			}
		}
		if rule.CollectionName != "" && rule.FieldName != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}

// CollectionResolver ánh xạ tên collection sang handle.
// Domain service xây map này từ các collection được truyền tường minh khi khởi tạo.
type CollectionResolver map[string]*mongo.Collection

// CascadeDelete xóa các record phụ thuộc theo rules.
// Rule không cascade còn record tham chiếu sẽ chặn thao tác với lỗi 409.
// Trả về tổng số record phụ thuộc đã xóa.
func CascadeDelete(ctx context.Context, resolver CollectionResolver, rules []CascadeRule, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	// Kiểm tra các rule chặn trước khi xóa bất cứ thứ gì
	for _, rule := range rules {
		if rule.Cascade {
			continue
		}
		collection, ok := resolver[rule.CollectionName]
		if !ok {
			return 0, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", rule.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, bson.M{rule.FieldName: bson.M{"$in": ids}})
		if err != nil {
			return 0, common.ConvertMongoError(err)
		}
		if count > 0 {
			msg := rule.ErrorMessage
			if msg == "" {
				msg = fmt.Sprintf("Không thể xóa vì có %d record trong collection '%s' đang tham chiếu tới", count, rule.CollectionName)
			} else {
				msg = fmt.Sprintf(msg, count)
			}
			return 0, common.NewError(common.ErrCodeBusinessOperation, msg, common.StatusConflict, nil)
		}
	}

	var deleted int64
	for _, rule := range rules {
		if !rule.Cascade {
			continue
		}
		collection, ok := resolver[rule.CollectionName]
		if !ok {
			return deleted, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để cascade delete", rule.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		result, err := collection.DeleteMany(ctx, bson.M{rule.FieldName: bson.M{"$in": ids}})
		if err != nil {
			return deleted, common.ConvertMongoError(err)
		}
		deleted += result.DeletedCount
	}
	return deleted, nil
}
