package userdto

// UserRegisterInput đầu vào đăng ký người dùng (multipart form).
// Avatar và coverImage nhận qua file field, không nằm trong struct này.
type UserRegisterInput struct {
	FullName string `json:"fullName" form:"fullName" validate:"required,no_xss" maxLength:"100"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	UserName string `json:"userName" form:"userName" validate:"required,alphanum,min=3" maxLength:"30"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập: email hoặc userName kèm password.
type UserLoginInput struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password" validate:"required"`
}

// UserRefreshTokenInput đầu vào làm mới token.
// Token có thể nằm trong body hoặc cookie refreshToken.
type UserRefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UserUpdateAccountInput đầu vào cập nhật thông tin tài khoản.
type UserUpdateAccountInput struct {
	FullName string `json:"fullName" validate:"omitempty,no_xss" maxLength:"100"`
	Email    string `json:"email" validate:"omitempty,email"`
}
