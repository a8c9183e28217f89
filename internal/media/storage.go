// Package media quản lý lưu trữ file video/ảnh trên MinIO.
// Handler nhận file multipart vào thư mục tạm, Storage đẩy lên bucket
// và luôn xóa file tạm dù upload thành công hay thất bại.
package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vidtube/config"
	"vidtube/internal/common"
	"vidtube/internal/logger"
)

// Kind phân loại asset để chọn bucket và content type
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Asset là kết quả upload: URL công khai và key để xóa sau này
type Asset struct {
	URL string `json:"url" bson:"url"`
	Key string `json:"key" bson:"key"`
}

// Storage bọc MinIO client với cấu hình bucket
type Storage struct {
	client    *minio.Client
	publicURL string
	buckets   map[Kind]string
}

// NewStorage tạo client MinIO và đảm bảo các bucket tồn tại
func NewStorage(cfg *config.Configuration) (*Storage, error) {
	client, err := minio.New(cfg.MinIO_Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO_AccessKey, cfg.MinIO_SecretKey, ""),
		Secure: cfg.MinIO_UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &Storage{
		client:    client,
		publicURL: cfg.MinIO_PublicURL,
		buckets: map[Kind]string{
			KindVideo: cfg.MinIO_VideoBucket,
			KindImage: cfg.MinIO_ImageBucket,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, bucket := range s.buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket %s error: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("create bucket %s error: %w", bucket, err)
			}
			logger.GetAppLogger().Infof("Đã tạo bucket: %s", bucket)
		}
	}

	logger.GetAppLogger().Infof("Connected to MinIO at %s", cfg.MinIO_Endpoint)
	return s, nil
}

// Store đẩy file tạm lên bucket theo kind rồi xóa file tạm.
// File tạm luôn được xóa, kể cả khi upload thất bại.
func (s *Storage) Store(ctx context.Context, localPath string, kind Kind) (*Asset, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			logger.GetAppLogger().Warnf("Không thể xóa file tạm %s: %v", localPath, err)
		}
	}()

	bucket, ok := s.buckets[kind]
	if !ok {
		return nil, common.NewError(common.ErrCodeMediaUpload, fmt.Sprintf("loại media không hỗ trợ: %s", kind), common.StatusBadRequest, nil)
	}

	contentType, err := contentTypeFor(localPath, kind)
	if err != nil {
		return nil, err
	}

	key := objectKey(localPath)
	_, err = s.client.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeMediaUpload, "Upload file thất bại", common.StatusInternalServerError, err.Error())
	}

	return &Asset{
		URL: fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.publicURL, "/"), bucket, key),
		Key: key,
	}, nil
}

// Delete xóa object khỏi bucket. Object không tồn tại không phải lỗi.
func (s *Storage) Delete(ctx context.Context, key string, kind Kind) error {
	bucket, ok := s.buckets[kind]
	if !ok {
		return common.NewError(common.ErrCodeMediaUpload, fmt.Sprintf("loại media không hỗ trợ: %s", kind), common.StatusBadRequest, nil)
	}

	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.GetAppLogger().Warnf("Không thể xóa object %s/%s: %v", bucket, key, err)
		return common.NewError(common.ErrCodeMediaUpload, "Xóa file thất bại", common.StatusInternalServerError, err.Error())
	}
	return nil
}

// contentTypeFor suy content type từ phần mở rộng file, kiểm tra khớp kind
func contentTypeFor(localPath string, kind Kind) (string, error) {
	ext := strings.ToLower(filepath.Ext(localPath))

	videoTypes := map[string]string{
		".mp4":  "video/mp4",
		".webm": "video/webm",
		".mkv":  "video/x-matroska",
		".mov":  "video/quicktime",
	}
	imageTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".webp": "image/webp",
		".gif":  "image/gif",
	}

	var types map[string]string
	switch kind {
	case KindVideo:
		types = videoTypes
	case KindImage:
		types = imageTypes
	default:
		return "", common.NewError(common.ErrCodeMediaUpload, fmt.Sprintf("loại media không hỗ trợ: %s", kind), common.StatusBadRequest, nil)
	}

	contentType, ok := types[ext]
	if !ok {
		return "", common.NewError(common.ErrCodeMediaUpload, fmt.Sprintf("định dạng file không hỗ trợ: %s", ext), common.StatusBadRequest, nil)
	}
	return contentType, nil
}

// objectKey sinh key duy nhất từ tên file tạm.
// Tên file tạm đã chứa timestamp nano do handler sinh ra.
func objectKey(localPath string) string {
	return filepath.Base(localPath)
}
