package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	type input struct {
		Content string `validate:"no_xss"`
	}

	assert.NoError(t, Validate.Struct(input{Content: "một comment bình thường"}))
	assert.Error(t, Validate.Struct(input{Content: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(input{Content: "click javascript:void(0)"}))
	assert.Error(t, Validate.Struct(input{Content: `<img onerror=alert(1)>`}))
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	type input struct {
		Password string `validate:"strong_password"`
	}

	// Đạt 3/4 nhóm ký tự
	assert.NoError(t, Validate.Struct(input{Password: "Abcdef12"}))
	assert.NoError(t, Validate.Struct(input{Password: "abcdef1!"}))

	// Quá ngắn
	assert.Error(t, Validate.Struct(input{Password: "Ab1!"}))
	// Chỉ 2 nhóm
	assert.Error(t, Validate.Struct(input{Password: "abcdefgh1"}))
	assert.Error(t, Validate.Struct(input{Password: "abcdefghij"}))
}
