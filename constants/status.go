package constants

// User role
const (
	RoleGuest      = 0
	RoleHotelOwner = 1
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Room type
const (
	RoomTypeSingle      = "Single Bed"
	RoomTypeDouble      = "Double Bed"
	RoomTypeLuxury      = "Luxury Room"
	RoomTypeFamilySuite = "Family Suite"
)

// RoomTypes danh sách các loại phòng hợp lệ
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeLuxury, RoomTypeFamilySuite}

// IsValidRoomType kiểm tra loại phòng hợp lệ
func IsValidRoomType(roomType string) bool {
	for _, t := range RoomTypes {
		if t == roomType {
			return true
		}
	}
	return false
}
