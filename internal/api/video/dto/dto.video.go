package videodto

// VideoPublishInput đầu vào đăng video (multipart form).
// File video và thumbnail nhận qua file field, không nằm trong struct này.
// DurationSeconds do client đo và gửi lên vì kho object storage không
// tự trích metadata video.
type VideoPublishInput struct {
	Title           string  `json:"title" form:"title" validate:"required,no_xss" maxLength:"200"`
	Description     string  `json:"description" form:"description" validate:"omitempty,no_xss" maxLength:"2000"`
	DurationSeconds float64 `json:"durationSeconds" form:"durationSeconds"`
}

// VideoUpdateInput đầu vào cập nhật video. Thumbnail mới (nếu có)
// nhận qua file field.
type VideoUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,no_xss" maxLength:"200"`
	Description string `json:"description" form:"description" validate:"omitempty,no_xss" maxLength:"2000"`
}
