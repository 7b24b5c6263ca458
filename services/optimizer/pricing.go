package optimizer

import (
	"math"

	"quickstay/constants"
	"quickstay/models"
)

// toCents đổi giá sang đơn vị xu để mọi phép so sánh là số nguyên
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// PriceCents tính giá một phòng cho số khách và số đêm cho trước.
// Một người lớn ở phòng đôi hoặc phòng gia đình chịu hệ số 1.5x.
func PriceCents(room *models.Room, adults, children, nights int) int64 {
	base := toCents(room.PricePerNight)

	isDoubleOrFamily := room.RoomType == constants.RoomTypeDouble || room.RoomType == constants.RoomTypeFamilySuite
	if adults == 1 && isDoubleOrFamily {
		base = base * 3 / 2
	}

	return base * int64(nights)
}
