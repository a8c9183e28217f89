// Package commentsvc - service bình luận: danh sách join phân trang,
// thêm, sửa và xóa theo chủ sở hữu.
package commentsvc

import (
	"context"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	models "vidtube/internal/api/comment/models"
	usermodels "vidtube/internal/api/user/models"
	videomodels "vidtube/internal/api/video/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
	userService  *basesvc.BaseServiceMongoImpl[usermodels.User]
	likes        *mongo.Collection
	cascadeRules []basesvc.CascadeRule
	resolver     basesvc.CollectionResolver
}

// NewCommentService tạo mới CommentService
func NewCommentService(comments, videos, users, likes *mongo.Collection) *CommentService {
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](comments),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videos),
		userService:          basesvc.NewBaseServiceMongo[usermodels.User](users),
		likes:                likes,
		cascadeRules:         basesvc.ParseCascadeTag(reflect.TypeOf(models.Comment{})),
		resolver: basesvc.CollectionResolver{
			global.MongoDB_ColNames.Likes: likes,
		},
	}
}

// ListResult là trang comment đã join chủ sở hữu và số like
type ListResult struct {
	Page      int64                    `json:"page"`
	Limit     int64                    `json:"limit"`
	ItemCount int64                    `json:"itemCount"`
	Total     int64                    `json:"total"`
	TotalPage int64                    `json:"totalPage"`
	Items     []models.CommentWithMeta `json:"items"`
}

// ListByVideo trả về trang bình luận của video, mới nhất trước.
// Video phải tồn tại và đã publish, ngược lại NotFound.
// Owner và likeCount join ở tầng ứng dụng bằng fetch batch theo $in.
func (s *CommentService) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) (*ListResult, error) {
	exists, err := s.videoService.DocumentExists(ctx, bson.M{"_id": videoID, "isPublished": true})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	paged, err := s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"video": videoID}, page, limit, opts)
	if err != nil {
		return nil, err
	}

	items, err := s.joinMeta(ctx, paged.Items)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Page:      paged.Page,
		Limit:     paged.Limit,
		ItemCount: paged.ItemCount,
		Total:     paged.Total,
		TotalPage: paged.TotalPage,
		Items:     items,
	}, nil
}

// joinMeta join chủ sở hữu và số like vào danh sách comment.
// Like đếm bằng một lần fetch batch theo $in trên id các comment của trang.
func (s *CommentService) joinMeta(ctx context.Context, comments []models.Comment) ([]models.CommentWithMeta, error) {
	result := make([]models.CommentWithMeta, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	commentIDs := make([]primitive.ObjectID, 0, len(comments))
	ownerIDs := make([]primitive.ObjectID, 0, len(comments))
	seenOwner := map[primitive.ObjectID]bool{}
	for _, cm := range comments {
		commentIDs = append(commentIDs, cm.ID)
		if !seenOwner[cm.Owner] {
			seenOwner[cm.Owner] = true
			ownerIDs = append(ownerIDs, cm.Owner)
		}
	}

	owners, err := s.userService.FindManyByIds(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	ownerByID := make(map[primitive.ObjectID]usermodels.PublicProfile, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o.PublicProfile()
	}

	likeCounts, err := s.likeCountsFor(ctx, commentIDs)
	if err != nil {
		return nil, err
	}

	for _, cm := range comments {
		result = append(result, models.CommentWithMeta{
			Comment:   cm,
			Owner:     ownerByID[cm.Owner],
			LikeCount: likeCounts[cm.ID],
		})
	}
	return result, nil
}

// likeCountsFor đếm like theo comment id bằng một truy vấn $in duy nhất
func (s *CommentService) likeCountsFor(ctx context.Context, commentIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64, len(commentIDs))

	cursor, err := s.likes.Find(ctx,
		bson.M{"comment": bson.M{"$in": commentIDs}},
		options.Find().SetProjection(bson.M{"comment": 1}),
	)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Comment primitive.ObjectID `bson:"comment"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	for _, d := range docs {
		counts[d.Comment]++
	}
	return counts, nil
}

// Add thêm bình luận vào video đã publish
func (s *CommentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (models.Comment, error) {
	var zero models.Comment

	exists, err := s.videoService.DocumentExists(ctx, bson.M{"_id": videoID, "isPublished": true})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrNotFound
	}

	comment := models.Comment{
		Video:   videoID,
		Owner:   owner,
		Content: strings.TrimSpace(content),
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, comment)
}

// Update sửa nội dung bình luận thuộc owner trong một lệnh atomic
func (s *CommentService) Update(ctx context.Context, commentID, owner primitive.ObjectID, content string) (models.Comment, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"content": strings.TrimSpace(content)},
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, basesvc.OwnerScoped(commentID, owner), update, nil)
}

// Delete xóa bình luận thuộc owner rồi cascade các like của nó
func (s *CommentService) Delete(ctx context.Context, commentID, owner primitive.ObjectID) error {
	if _, err := s.BaseServiceMongoImpl.FindOneAndDelete(ctx, basesvc.OwnerScoped(commentID, owner), nil); err != nil {
		return err
	}
	_, err := basesvc.CascadeDelete(ctx, s.resolver, s.cascadeRules, []primitive.ObjectID{commentID})
	return err
}
