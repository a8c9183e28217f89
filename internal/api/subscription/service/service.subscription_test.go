package subscriptionsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
)

// Tự theo dõi chính mình bị chặn trước khi chạm database,
// nên service với collection nil vẫn test được nhánh này.
func TestToggle_SelfSubscription(t *testing.T) {
	svc := NewSubscriptionService(nil, nil)
	userID := primitive.NewObjectID()

	_, err := svc.Toggle(context.Background(), userID, userID)
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, common.ErrCodeValidation.Code, customErr.Code.Code)
}

func TestSubscribedChannels_OnlySelf(t *testing.T) {
	svc := NewSubscriptionService(nil, nil)

	_, err := svc.SubscribedChannels(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, common.ErrForbidden)
}
