// Package tweetdto chứa các DTO cho domain tweet.
package tweetdto

// TweetCreateInput là input tạo tweet mới
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,no_xss" maxLength:"500"`
}

// TweetUpdateInput là input cập nhật nội dung tweet
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss" maxLength:"500"`
}
