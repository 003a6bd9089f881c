// Package chatsvc - Test filter danh sách hội thoại.
package chatsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "travel_crm/internal/api/chat/models"
)

func TestThreadsFilter_LuonScopeTheoTenant(t *testing.T) {
	clientID := primitive.NewObjectID()

	filter := threadsFilter(clientID, "")
	assert.Equal(t, clientID, filter["clientId"])
	_, hasPlatform := filter["platform"]
	assert.False(t, hasPlatform, "platform rỗng thì không được thêm điều kiện platform")
}

func TestThreadsFilter_LocTheoPlatform(t *testing.T) {
	clientID := primitive.NewObjectID()

	filter := threadsFilter(clientID, models.PlatformInstagram)
	assert.Equal(t, clientID, filter["clientId"])
	assert.Equal(t, models.PlatformInstagram, filter["platform"])
}
