package controllers

import (
	"quickstay/config"
	"quickstay/dto"
	"quickstay/models"
	"quickstay/response"
	"quickstay/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HotelController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHotelController(db *gorm.DB, redisCli *redis.Client) HotelController {
	return HotelController{
		DB:    db,
		Redis: redisCli,
	}
}

// RegisterHotel đăng ký khách sạn cho chủ khách sạn, mỗi chủ một khách sạn
func (h HotelController) RegisterHotel(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	ownerID := userID.(uint)

	var input dto.RegisterHotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.Hotel
	if err := h.DB.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		response.BadRequest(c, "Bạn đã đăng ký khách sạn rồi")
		return
	}

	hotel := models.Hotel{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		Contact: input.Contact,
		OwnerID: ownerID,
	}

	if err := h.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Xoá cache danh sách phòng vì dữ liệu khách sạn thay đổi
	services.DeleteFromRedis(config.Ctx, h.Redis, "rooms:all")

	response.Success(c, dto.HotelResponse{
		ID:      hotel.ID,
		Name:    hotel.Name,
		Address: hotel.Address,
		City:    hotel.City,
		Contact: hotel.Contact,
		OwnerID: hotel.OwnerID,
	})
}

// GetOwnerHotel lấy khách sạn của chủ đang đăng nhập
func (h HotelController) GetOwnerHotel(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var hotel models.Hotel
	if err := h.DB.Where("owner_id = ?", userID).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.HotelResponse{
		ID:      hotel.ID,
		Name:    hotel.Name,
		Address: hotel.Address,
		City:    hotel.City,
		Contact: hotel.Contact,
		OwnerID: hotel.OwnerID,
	})
}

// GetCities danh sách thành phố có khách sạn, dùng cho ô tìm kiếm
func (h HotelController) GetCities(c *gin.Context) {
	var cities []string
	if err := h.DB.Model(&models.Hotel{}).Distinct("city").Order("city").Pluck("city", &cities).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, cities)
}
