package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "thiếu title", StatusBadRequest, nil)

	var customErr *Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, "VAL_001", customErr.Code.Code)
	assert.Equal(t, StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "thiếu title", customErr.Error())
}

func TestErrorIs(t *testing.T) {
	// Hai error cùng code + message phải match qua errors.Is
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Khác message thì không match
	other := NewError(ErrCodeDatabaseQuery, "Lỗi khác", StatusNotFound, nil)
	assert.False(t, errors.Is(other, ErrNotFound))
}

func TestConvertMongoError_Duplicate(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
	converted := ConvertMongoError(dupErr)

	var customErr *Error
	assert.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusConflict, customErr.StatusCode)
}

func TestConvertMongoError_CommandError(t *testing.T) {
	cases := []struct {
		code       int32
		wantStatus int
	}{
		{code: 101, wantStatus: StatusServiceUnavailable},
		{code: 301, wantStatus: StatusInternalServerError},
		{code: 401, wantStatus: StatusInternalServerError},
		{code: 501, wantStatus: StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("code_%d", tc.code), func(t *testing.T) {
			converted := ConvertMongoError(mongo.CommandError{Code: tc.code})
			var customErr *Error
			assert.True(t, errors.As(converted, &customErr))
			assert.Equal(t, tc.wantStatus, customErr.StatusCode)
		})
	}
}

func TestConvertMongoError_PassThrough(t *testing.T) {
	// Lỗi nghiệp vụ đã map sẵn phải được giữ nguyên, không convert tiếp
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))
	assert.Nil(t, ConvertMongoError(nil))

	masked := NewError(ErrCodeValidationInput, "dữ liệu sai", StatusBadRequest, nil)
	assert.Equal(t, masked, ConvertMongoError(masked))
}

func TestConvertMongoError_Unknown(t *testing.T) {
	converted := ConvertMongoError(errors.New("socket closed"))
	var customErr *Error
	assert.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
}
