package dto

// RegisterHotelRequest dữ liệu đăng ký khách sạn của chủ khách sạn
type RegisterHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

// HotelResponse thông tin khách sạn trả về cho client
type HotelResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`
	OwnerID uint   `json:"ownerId"`
}
