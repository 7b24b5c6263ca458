package dto

// RegisterRequest dữ liệu đăng ký tài khoản
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
}

// LoginRequest dữ liệu đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest đăng nhập bằng Google ID token
type GoogleAuthRequest struct {
	Token string `json:"token" binding:"required"`
}

// UserResponse thông tin người dùng trả về sau khi xác thực
type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	Image       string `json:"image"`
	Token       string `json:"token,omitempty"`
}
