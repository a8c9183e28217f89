package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOwnerScoped(t *testing.T) {
	id := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	filter := OwnerScoped(id, owner)
	assert.Equal(t, bson.M{"_id": id, "owner": owner}, filter)
}
