package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD, chỉ admin).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Role     string `json:"role" validate:"required,oneof=admin user guest"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD, chỉ admin).
type UserUpdateInput struct {
	Name string `json:"name" validate:"omitempty,no_xss"`
	Role string `json:"role" validate:"omitempty,oneof=admin user guest"`
}

// UserSignupInput đầu vào đăng ký tài khoản. Role mặc định là guest,
// admin nâng quyền sau qua CRUD user.
type UserSignupInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResetPasswordInput đầu vào đổi mật khẩu (yêu cầu mật khẩu cũ).
type UserResetPasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}
