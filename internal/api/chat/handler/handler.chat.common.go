package chathdl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// requireClientID lấy tenant ID từ context (do AuthMiddleware set).
func requireClientID(c fiber.Ctx) (primitive.ObjectID, error) {
	clientID, ok := c.Locals("clientID").(string)
	if !ok || clientID == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid client ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// parseBody decode JSON body và validate theo struct tag.
func parseBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("%s: %s", common.MsgValidationError, err.Error()), common.StatusBadRequest, nil)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("%s: %s", common.MsgValidationError, err.Error()), common.StatusBadRequest, nil)
	}

	return nil
}
