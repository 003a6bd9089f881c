// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "travel_crm/internal/api/auth/dto"
	models "travel_crm/internal/api/auth/models"
	authsvc "travel_crm/internal/api/auth/service"
	basehdl "travel_crm/internal/api/base/handler"
	"travel_crm/internal/api/middleware"
	"travel_crm/internal/common"
	"travel_crm/internal/logger"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleLogin xử lý đăng nhập bằng email + mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("login", c, map[string]interface{}{"user_id": user.ID.Hex()})

		// Token vừa đổi — bỏ bản cache cũ để token mới có hiệu lực ngay
		middleware.GetAuthManager().InvalidateUser(user.ID)

		user.Password = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleSignup xử lý đăng ký tài khoản mới (role mặc định guest)
func (h *UserHandler) HandleSignup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserSignupInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Signup(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user.Password = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleCreateUser tạo người dùng mới với role chỉ định (chỉ admin).
// Khác InsertOne của BaseHandler: mật khẩu được băm trước khi lưu.
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clientID, err := h.requireClientID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.CreateUser(c.Context(), clientID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user.Password = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng (vô hiệu token hiện tại)
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.requireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.Logout(c.Context(), objID)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(objID)
			logger.LogAuth("logout", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetMe trả về profile người dùng hiện tại kèm danh sách trang được phép truy cập
func (h *UserHandler) HandleGetMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.requireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user.Password = ""
		user.Token = ""
		h.HandleResponse(c, fiber.Map{
			"user":  user,
			"pages": authsvc.GetRolePages(user.Role),
		}, nil)
		return nil
	})
}

// HandleResetPassword đổi mật khẩu của người dùng hiện tại
func (h *UserHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.requireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ResetPassword(c.Context(), objID, &input)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(objID)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleBlockUser khóa người dùng theo email (chỉ admin)
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.BlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.SetBlock(c.Context(), input.Email, true, input.Note)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(user.ID)
			logger.LogAuth("block_user", c, map[string]interface{}{"email": input.Email, "note": input.Note})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUnBlockUser mở khóa người dùng theo email (chỉ admin)
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UnBlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.SetBlock(c.Context(), input.Email, false, "")
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(user.ID)
			logger.LogAuth("unblock_user", c, map[string]interface{}{"email": input.Email})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// requireUserID lấy user ID từ context (do AuthMiddleware set)
func (h *UserHandler) requireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// requireClientID lấy tenant ID từ context (do AuthMiddleware set)
func (h *UserHandler) requireClientID(c fiber.Ctx) (primitive.ObjectID, error) {
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
