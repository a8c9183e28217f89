package commentdto

// CommentCreateInput đầu vào thêm bình luận.
type CommentCreateInput struct {
	Content string `json:"content" validate:"required,no_xss" maxLength:"1000"`
}

// CommentUpdateInput đầu vào sửa bình luận.
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss" maxLength:"1000"`
}
