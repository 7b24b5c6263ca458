package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"quickstay/config"
	"quickstay/constants"
	"quickstay/dto"
	"quickstay/models"
	"quickstay/response"
	"quickstay/services"
	"quickstay/services/optimizer"
	"quickstay/validator"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) BookingController {
	return BookingController{
		DB:     db,
		Redis:  redisCli,
		Melody: m,
	}
}

func toBookingResponse(booking *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:            booking.ID,
		BookingCode:   booking.BookingCode,
		Room:          toRoomSummary(&booking.Room),
		Adults:        booking.Adults,
		Children:      booking.Children,
		Guests:        booking.Guests,
		CheckInDate:   booking.CheckInDate.Format("02/01/2006"),
		CheckOutDate:  booking.CheckOutDate.Format("02/01/2006"),
		Status:        booking.Status,
		TotalPrice:    booking.TotalPrice,
		PaymentStatus: booking.PaymentStatus,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		CreatedAt:     booking.CreatedAt.Format("02/01/2006 15:04"),
	}
}

// CheckAvailabilityAPI kiểm tra một phòng còn trống trong khoảng ngày
func (b BookingController) CheckAvailabilityAPI(c *gin.Context) {
	var input dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingDates(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := b.DB.First(&room, input.Room).Error; err != nil {
		response.NotFound(c)
		return
	}

	available, err := services.NewAvailabilityService(b.DB).CheckAvailable(c.Request.Context(), room.RoomId, checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"room":        room.RoomId,
		"isAvailable": available && room.IsAvailable,
	})
}

// CreateBooking đặt phòng, hỗ trợ cả khách đã đăng nhập và khách vãng lai
func (b BookingController) CreateBooking(c *gin.Context) {
	var input dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var userID *uint
	if id, exists := c.Get("userID"); exists {
		uid := id.(uint)
		userID = &uid
	}

	checkIn, checkOut, err := validator.ValidateCreateBooking(&input, userID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := b.DB.Preload("Hotel").First(&room, input.Room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !room.IsAvailable {
		response.BadRequest(c, "Phòng hiện không nhận khách")
		return
	}

	if input.Adults < room.MinAdults || input.Adults > room.MaxAdults ||
		input.Children < room.MinChildren || input.Children > room.MaxChildren {
		response.BadRequest(c, "Số khách không phù hợp với phòng này")
		return
	}

	available, err := services.NewAvailabilityService(b.DB).CheckAvailable(c.Request.Context(), room.RoomId, checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}
	if !available {
		response.BadRequest(c, "Phòng đã được đặt trong khoảng thời gian này")
		return
	}

	nights := optimizer.Nights(checkIn, checkOut)
	totalCents := optimizer.PriceCents(&room, input.Adults, input.Children, nights)

	booking := models.Booking{
		BookingCode:  strings.ToUpper(uuid.NewString()[:8]),
		UserID:       userID,
		RoomID:       room.RoomId,
		HotelID:      room.HotelID,
		Adults:       input.Adults,
		Children:     input.Children,
		Guests:       input.Adults + input.Children,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       constants.BookingStatusPending,
		TotalPrice:   float64(totalCents) / 100,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		GuestPhone:   input.GuestPhone,
	}

	if err := b.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}
	booking.Room = room

	// Gửi email xác nhận, lỗi gửi mail không chặn việc đặt phòng
	email, name := input.GuestEmail, input.GuestName
	if userID != nil {
		var user models.User
		if err := b.DB.First(&user, *userID).Error; err == nil {
			email, name = user.Email, user.Name
		}
	}
	if email != "" {
		go func(bk models.Booking) {
			if err := services.SendBookingConfirmation(&bk, email, name); err != nil {
				log.Printf("Không thể gửi email xác nhận cho %s: %v", bk.BookingCode, err)
			}
		}(booking)
	}

	// Báo cho dashboard chủ khách sạn qua websocket
	if b.Melody != nil {
		if msg, err := json.Marshal(gin.H{
			"event":       "booking:new",
			"hotelId":     booking.HotelID,
			"bookingCode": booking.BookingCode,
		}); err == nil {
			b.Melody.Broadcast(msg)
		}
	}

	response.Success(c, toBookingResponse(&booking))
}

// GetUserBookings lịch sử đặt phòng của người dùng đang đăng nhập
func (b BookingController) GetUserBookings(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var bookings []models.Booking
	if err := b.DB.Preload("Room").Preload("Room.Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, toBookingResponse(&bookings[i]))
	}

	response.Success(c, result)
}

// GetHotelBookings dashboard đặt phòng của chủ khách sạn
func (b BookingController) GetHotelBookings(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var hotel models.Hotel
	if err := b.DB.Where("owner_id = ?", userID).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	var bookings []models.Booking
	if err := b.DB.Preload("Room").Preload("Room.Hotel").
		Where("hotel_id = ?", hotel.ID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalRevenue float64
	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		if bookings[i].Status != constants.BookingStatusCancelled {
			totalRevenue += bookings[i].TotalPrice
		}
		result = append(result, toBookingResponse(&bookings[i]))
	}

	response.Success(c, dto.DashboardResponse{
		TotalBookings: len(result),
		TotalRevenue:  totalRevenue,
		Bookings:      result,
	})
}

// StripePayment tạo phiên thanh toán Stripe cho một lượt đặt phòng
func (b BookingController) StripePayment(c *gin.Context) {
	var input dto.PaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := b.DB.Preload("Room").Preload("Room.Hotel").
		Where("booking_code = ?", input.BookingCode).
		First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	if booking.PaymentStatus == constants.PaymentStatusSuccess {
		response.BadRequest(c, "Đơn đặt phòng đã được thanh toán")
		return
	}

	origin := c.GetHeader("Origin")
	url, err := services.CreateCheckoutSession(&booking, origin)
	if err != nil {
		log.Printf("Không thể tạo phiên thanh toán cho %s: %v", booking.BookingCode, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": url})
}

// filterOptimizePool lọc pool phòng cho bộ tối ưu: chỉ nhận phòng đang mở
// nhận khách, lọc thêm theo thành phố nếu có
func filterOptimizePool(allRooms []models.Room, city string) []*models.Room {
	pool := make([]*models.Room, 0, len(allRooms))
	for i := range allRooms {
		if !allRooms[i].IsAvailable {
			continue
		}
		if city != "" && !services.CityMatches(allRooms[i].Hotel.City, city) {
			continue
		}
		pool = append(pool, &allRooms[i])
	}
	return pool
}

// UpdatePaymentStatus đánh dấu một đơn đã thanh toán sau khi Stripe redirect về
func (b BookingController) UpdatePaymentStatus(c *gin.Context) {
	var input dto.PaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := b.DB.Where("booking_code = ?", input.BookingCode).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.PaymentStatus = constants.PaymentStatusSuccess
	booking.Status = constants.BookingStatusConfirmed
	if err := b.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"bookingCode":   booking.BookingCode,
		"paymentStatus": booking.PaymentStatus,
		"status":        booking.Status,
	})
}

// OptimizeBooking gợi ý phương án xếp phòng tối ưu cho một nhóm khách.
// Nhóm từ 10 khách trả về các tổ hợp phòng, nhóm nhỏ trả về đề xuất từng phòng.
func (b BookingController) OptimizeBooking(c *gin.Context) {
	var input dto.OptimizeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateOptimizeRequest(&input)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roomCtl := RoomController{DB: b.DB, Redis: b.Redis}
	allRooms, err := roomCtl.loadAllRooms(config.Ctx)
	if err != nil {
		response.ServerError(c)
		return
	}

	pool := filterOptimizePool(allRooms, input.City)

	opt := optimizer.New(optimizer.Options{
		Checker: services.NewAvailabilityService(b.DB),
	})

	result, err := opt.Optimize(c.Request.Context(), optimizer.Request{
		Rooms:    pool,
		Adults:   input.Adults,
		Children: input.Children,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var suggestion string
	if len(pool) == 0 && input.City != "" {
		cities := make([]string, 0, len(allRooms))
		seen := make(map[string]bool)
		for i := range allRooms {
			city := allRooms[i].Hotel.City
			if city != "" && !seen[city] {
				seen[city] = true
				cities = append(cities, city)
			}
		}
		suggestion = services.SuggestCity(cities, input.City)
	}

	if result.Group {
		solutions := make([]dto.SolutionResponse, 0, len(result.Solutions))
		for _, sol := range result.Solutions {
			rooms := make([]dto.SolutionRoomResponse, 0, len(sol.Assignments))
			for _, a := range sol.Assignments {
				rooms = append(rooms, dto.SolutionRoomResponse{
					Room:     toRoomSummary(a.Room),
					Adults:   a.Adults,
					Children: a.Children,
					Price:    float64(a.PriceCents) / 100,
				})
			}
			solutions = append(solutions, dto.SolutionResponse{
				Rooms:          rooms,
				TotalPrice:     sol.TotalPrice(),
				TotalRooms:     sol.TotalRooms,
				PricePerPerson: sol.PricePerPerson(result.TotalGuests),
				Nights:         sol.Nights,
			})
		}

		message := result.Message
		if len(solutions) == 0 {
			message = fmt.Sprintf("Không tìm thấy tổ hợp phòng phù hợp cho %d khách", result.TotalGuests)
		}

		response.Success(c, dto.OptimizeGroupResponse{
			Solutions:   solutions,
			TotalGuests: result.TotalGuests,
			Nights:      result.Nights,
			Message:     message,
			Suggestion:  suggestion,
		})
		return
	}

	recommendations := make([]dto.RecommendationResponse, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		var perPerson float64
		if result.TotalGuests > 0 {
			perPerson = rec.TotalPrice() / float64(result.TotalGuests)
		}
		recommendations = append(recommendations, dto.RecommendationResponse{
			Room:           toRoomSummary(rec.Room),
			IsAvailable:    rec.IsAvailable,
			TotalPrice:     rec.TotalPrice(),
			PricePerPerson: perPerson,
			Nights:         rec.Nights,
			Adults:         rec.Adults,
			Children:       rec.Children,
		})
	}

	response.Success(c, dto.OptimizeIndividualResponse{
		Recommendations: recommendations,
		TotalGuests:     result.TotalGuests,
		Nights:          result.Nights,
		Suggestion:      suggestion,
	})
}

// MarkCompletedBookings chuyển các booking đã qua ngày trả phòng sang hoàn thành
func MarkCompletedBookings(db *gorm.DB) (int64, error) {
	result := db.Model(&models.Booking{}).
		Where("status IN ? AND check_out_date < ?",
			[]int{constants.BookingStatusPending, constants.BookingStatusConfirmed}, time.Now()).
		Update("status", constants.BookingStatusCompleted)
	return result.RowsAffected, result.Error
}
