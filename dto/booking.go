package dto

// CheckAvailabilityRequest kiểm tra một phòng còn trống trong khoảng ngày
type CheckAvailabilityRequest struct {
	Room         uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// CreateBookingRequest dữ liệu đặt phòng
type CreateBookingRequest struct {
	Room         uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone"`
}

// BookingResponse thông tin một lượt đặt phòng trả về cho client
type BookingResponse struct {
	ID            uint        `json:"id"`
	BookingCode   string      `json:"bookingCode"`
	Room          RoomSummary `json:"room"`
	Adults        int         `json:"adults"`
	Children      int         `json:"children"`
	Guests        int         `json:"guests"`
	CheckInDate   string      `json:"checkInDate"`
	CheckOutDate  string      `json:"checkOutDate"`
	Status        int         `json:"status"`
	TotalPrice    float64     `json:"totalPrice"`
	PaymentStatus int         `json:"paymentStatus"`
	GuestName     string      `json:"guestName,omitempty"`
	GuestEmail    string      `json:"guestEmail,omitempty"`
	CreatedAt     string      `json:"createdAt"`
}

// DashboardResponse tổng quan đặt phòng của một khách sạn
type DashboardResponse struct {
	TotalBookings int               `json:"totalBookings"`
	TotalRevenue  float64           `json:"totalRevenue"`
	Bookings      []BookingResponse `json:"bookings"`
}

// PaymentRequest yêu cầu tạo phiên thanh toán Stripe
type PaymentRequest struct {
	BookingCode string `json:"bookingCode" binding:"required"`
}
