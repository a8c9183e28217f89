package logger

import "os"

// LogConfig cấu hình hệ thống logging.
// Đọc từ environment variables với giá trị mặc định hợp lý cho development.
type LogConfig struct {
	Level      string // Mức log: debug, info, warn, error
	Format     string // Định dạng: json hoặc text
	Output     string // Đầu ra: file, stdout, both
	LogPath    string // Thư mục chứa file log (tương đối so với root project)
	AppFile    string // File log chính của ứng dụng
	AuditFile  string // File log audit
	ErrorFile  string // File log lỗi
	MaxSize    int    // Kích thước tối đa mỗi file (MB)
	MaxBackups int    // Số file cũ giữ lại
	MaxAge     int    // Số ngày giữ file log
	Compress   bool   // Nén file cũ
}

// DefaultConfig trả về cấu hình logging mặc định
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}

	return cfg
}
