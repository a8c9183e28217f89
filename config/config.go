package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// địa chỉ server, bí mật JWT, kết nối MongoDB và kho media MinIO.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                // Cổng server
	JwtSecret             string `env:"JWT_SECRET,required"`                      // Bí mật ký JWT
	AccessTokenTTLMinutes int    `env:"ACCESS_TOKEN_TTL_MINUTES" envDefault:"60"` // Thời gian sống access token (phút)
	RefreshTokenTTLHours  int    `env:"REFRESH_TOKEN_TTL_HOURS" envDefault:"240"` // Thời gian sống refresh token (giờ)

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URI kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Tên database

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins được phép (phân cách bởi dấu phẩy)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// MinIO Object Storage
	MinIO_Endpoint    string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"` // Endpoint MinIO
	MinIO_AccessKey   string `env:"MINIO_ACCESS_KEY,required"`                  // Access key
	MinIO_SecretKey   string `env:"MINIO_SECRET_KEY,required"`                  // Secret key
	MinIO_UseSSL      bool   `env:"MINIO_USE_SSL" envDefault:"false"`           // Dùng SSL khi kết nối MinIO
	MinIO_PublicURL   string `env:"MINIO_PUBLIC_URL" envDefault:""`             // Base URL public của object (rỗng = suy ra từ endpoint)
	MinIO_VideoBucket string `env:"MINIO_VIDEO_BUCKET" envDefault:"videos"`     // Bucket chứa video
	MinIO_ImageBucket string `env:"MINIO_IMAGE_BUCKET" envDefault:"images"`     // Bucket chứa ảnh (thumbnail, avatar, cover)

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn file certificate
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn file private key
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi ngược lên thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
