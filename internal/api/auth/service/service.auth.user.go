// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "travel_crm/internal/api/auth/dto"
	models "travel_crm/internal/api/auth/models"
	basesvc "travel_crm/internal/api/base/service"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
	"travel_crm/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Login đăng nhập bằng email + mật khẩu.
// Phát hành JWT token mới và lưu vào user (token cũ bị thay thế).
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsBlock {
		logrus.WithFields(logrus.Fields{"email": input.Email, "note": user.BlockNote}).Warn("❌ [AUTH] Tài khoản bị khóa thử đăng nhập")
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := utility.CreateToken(global.ServerConfig.JwtSecret, user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "role": user.Role}).Info("✅ [AUTH] Đăng nhập thành công")
	return &updated, nil
}

// Signup đăng ký tài khoản mới với role mặc định guest.
// Tài khoản tự đăng ký mở một tenant mới (ClientID riêng).
func (s *UserService) Signup(ctx context.Context, input *authdto.UserSignupInput) (*models.User, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.InsertOne(ctx, models.User{
		ClientID: primitive.NewObjectID(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleGuest,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Email đã được sử dụng", common.StatusConflict, err)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("✅ [AUTH] Đăng ký tài khoản mới")
	return &user, nil
}

// CreateUser tạo người dùng mới với role chỉ định (chỉ admin gọi).
// Người dùng mới thuộc cùng tenant với admin tạo ra họ.
func (s *UserService) CreateUser(ctx context.Context, clientID primitive.ObjectID, input *authdto.UserCreateInput) (*models.User, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.InsertOne(ctx, models.User{
		ClientID: clientID,
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Email đã được sử dụng", common.StatusConflict, err)
		}
		return nil, err
	}
	return &user, nil
}

// Logout đăng xuất người dùng (xóa token hiện tại).
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": ""},
	})
	return err
}

// ResetPassword đổi mật khẩu (yêu cầu mật khẩu cũ đúng).
// Token hiện tại bị vô hiệu để buộc đăng nhập lại.
func (s *UserService) ResetPassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserResetPasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(user.Password, input.OldPassword); err != nil {
		return common.ErrInvalidCredentials
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashed, "token": ""},
	})
	return err
}

// SetBlock khóa hoặc mở khóa người dùng theo email.
// Khi khóa, token hiện tại bị vô hiệu.
func (s *UserService) SetBlock(ctx context.Context, email string, isBlock bool, note string) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{"isBlock": isBlock, "blockNote": note}
	if isBlock {
		set["token"] = ""
	}
	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// EnsureDefaultAdmin tạo tài khoản admin mặc định nếu chưa có admin nào.
// Gọi khi khởi động server, sau khi đã kết nối MongoDB.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := global.ServerConfig.DefaultAdminEmail
	password := global.ServerConfig.DefaultAdminPassword
	if email == "" || password == "" {
		logrus.Warn("⚠️ [AUTH] Chưa có admin và thiếu cấu hình DEFAULT_ADMIN_EMAIL/PASSWORD, bỏ qua seeding")
		return nil
	}

	hashed, err := utility.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.InsertOne(ctx, models.User{
		ClientID: primitive.NewObjectID(),
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
			return nil
		}
		return err
	}

	logrus.WithFields(logrus.Fields{"email": email}).Info("✅ [AUTH] Đã tạo tài khoản admin mặc định")
	return nil
}
