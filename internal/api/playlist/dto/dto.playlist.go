// Package playlistdto chứa các DTO cho domain playlist.
package playlistdto

// PlaylistCreateInput là input tạo playlist mới
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss" maxLength:"100"`
	Description string `json:"description" validate:"omitempty,no_xss" maxLength:"500"`
}

// PlaylistUpdateInput là input cập nhật playlist, trường rỗng giữ nguyên
type PlaylistUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss" maxLength:"100"`
	Description string `json:"description" validate:"omitempty,no_xss" maxLength:"500"`
}
