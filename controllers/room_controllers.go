package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"quickstay/config"
	"quickstay/dto"
	"quickstay/models"
	"quickstay/response"
	"quickstay/services"
	"quickstay/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const roomsCacheKey = "rooms:all"

type RoomController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) RoomController {
	return RoomController{
		DB:    db,
		Redis: redisCli,
	}
}

func toRoomSummary(room *models.Room) dto.RoomSummary {
	return dto.RoomSummary{
		ID:            room.RoomId,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Amenities:     room.Amenities,
		Images:        room.Images,
		MinAdults:     room.MinAdults,
		MaxAdults:     room.MaxAdults,
		MinChildren:   room.MinChildren,
		MaxChildren:   room.MaxChildren,
		Num:           room.Num,
		IsAvailable:   room.IsAvailable,
		Hotel: dto.HotelSummary{
			ID:      room.Hotel.ID,
			Name:    room.Hotel.Name,
			Address: room.Hotel.Address,
			City:    room.Hotel.City,
			Contact: room.Hotel.Contact,
		},
	}
}

// loadAllRooms lấy toàn bộ phòng từ cache, fallback sang DB và ghi lại cache
func (r RoomController) loadAllRooms(ctx context.Context) ([]models.Room, error) {
	var allRooms []models.Room

	if err := services.GetFromRedis(ctx, r.Redis, roomsCacheKey, &allRooms); err == nil && len(allRooms) > 0 {
		return allRooms, nil
	}

	if err := r.DB.Preload("Hotel").Find(&allRooms).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(ctx, r.Redis, roomsCacheKey, allRooms, 10*time.Minute); err != nil {
		log.Printf("Không thể lưu cache danh sách phòng: %v", err)
	}

	return allRooms, nil
}

// CreateRoom tạo phòng mới kèm upload ảnh lên Cloudinary
func (r RoomController) CreateRoom(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var hotel models.Hotel
	if err := r.DB.Where("owner_id = ?", userID).First(&hotel).Error; err != nil {
		response.BadRequest(c, "Bạn chưa đăng ký khách sạn")
		return
	}

	var input dto.CreateRoomRequest
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		HotelID:       hotel.ID,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Amenities:     input.Amenities,
		MinAdults:     input.MinAdults,
		MaxAdults:     input.MaxAdults,
		MinChildren:   input.MinChildren,
		MaxChildren:   input.MaxChildren,
		Num:           input.Num,
		IsAvailable:   true,
	}
	if room.MinAdults == 0 {
		room.MinAdults = 1
	}
	if room.MaxAdults == 0 {
		room.MaxAdults = 2
	}
	if room.MaxChildren == 0 {
		room.MaxChildren = 2
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Upload ảnh nếu có
	if form, err := c.MultipartForm(); err == nil {
		var urls []string
		for _, file := range form.File["images"] {
			src, err := file.Open()
			if err != nil {
				response.BadRequest(c, "Lỗi khi mở file")
				return
			}

			resp, err := config.Cloudinary.Upload.Upload(context.Background(), src, uploader.UploadParams{Folder: "rooms"})
			src.Close()
			if err != nil {
				response.ServerError(c)
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		if len(urls) > 0 {
			data, err := json.Marshal(urls)
			if err != nil {
				response.ServerError(c)
				return
			}
			room.Images = data
		}
	}

	if err := r.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Cache cũ không còn đúng nữa
	services.DeleteFromRedis(config.Ctx, r.Redis, roomsCacheKey)

	room.Hotel = hotel
	response.Success(c, toRoomSummary(&room))
}

// GetRooms danh sách phòng cho khách, lọc theo thành phố và số khách
func (r RoomController) GetRooms(c *gin.Context) {
	var query dto.RoomQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	allRooms, err := r.loadAllRooms(config.Ctx)
	if err != nil {
		response.ServerError(c)
		return
	}

	filtered := make([]dto.RoomSummary, 0, len(allRooms))
	for i := range allRooms {
		room := &allRooms[i]

		if !room.IsAvailable {
			continue
		}
		if query.City != "" && !services.CityMatches(room.Hotel.City, query.City) {
			continue
		}
		if query.RoomType != "" && room.RoomType != query.RoomType {
			continue
		}
		if query.Adults > 0 && (query.Adults < room.MinAdults || query.Adults > room.MaxAdults) {
			continue
		}
		if query.Children > 0 && (query.Children < room.MinChildren || query.Children > room.MaxChildren) {
			continue
		}

		filtered = append(filtered, toRoomSummary(room))
	}

	// Không tìm thấy theo thành phố thì gợi ý tên gần đúng nhất
	if len(filtered) == 0 && query.City != "" {
		cities := make([]string, 0, len(allRooms))
		seen := make(map[string]bool)
		for i := range allRooms {
			city := allRooms[i].Hotel.City
			if city != "" && !seen[city] {
				seen[city] = true
				cities = append(cities, city)
			}
		}

		if suggestion := services.SuggestCity(cities, query.City); suggestion != "" {
			response.Success(c, gin.H{
				"rooms":      filtered,
				"suggestion": suggestion,
			})
			return
		}
	}

	response.Success(c, gin.H{"rooms": filtered})
}

// GetRoomDetail chi tiết một phòng
func (r RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := r.DB.Preload("Hotel").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomSummary(&room))
}

// GetOwnerRooms danh sách phòng của chủ khách sạn đang đăng nhập
func (r RoomController) GetOwnerRooms(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var hotel models.Hotel
	if err := r.DB.Where("owner_id = ?", userID).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	var rooms []models.Room
	if err := r.DB.Preload("Hotel").Where("hotel_id = ?", hotel.ID).Order("room_id").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.RoomSummary, 0, len(rooms))
	for i := range rooms {
		result = append(result, toRoomSummary(&rooms[i]))
	}

	response.Success(c, result)
}

// ToggleRoomAvailability bật tắt trạng thái nhận khách của phòng
func (r RoomController) ToggleRoomAvailability(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := r.DB.Preload("Hotel").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if room.Hotel.OwnerID != userID.(uint) {
		response.Forbidden(c)
		return
	}

	room.IsAvailable = !room.IsAvailable
	if err := r.DB.Model(&models.Room{}).Where("room_id = ?", room.RoomId).Update("is_available", room.IsAvailable).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.DeleteFromRedis(config.Ctx, r.Redis, roomsCacheKey)

	response.Success(c, gin.H{
		"id":          room.RoomId,
		"isAvailable": room.IsAvailable,
	})
}
