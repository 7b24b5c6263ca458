package optimizer

import (
	"testing"

	"quickstay/constants"
	"quickstay/models"
)

func TestPriceCentsSurcharge(t *testing.T) {
	tests := []struct {
		name     string
		roomType string
		price    float64
		adults   int
		children int
		nights   int
		want     int64
	}{
		{"1 người lớn phòng đôi chịu 1.5x", constants.RoomTypeDouble, 100, 1, 0, 2, 30000},
		{"2 người lớn phòng đôi không phụ phí", constants.RoomTypeDouble, 100, 2, 0, 2, 20000},
		{"1 người lớn phòng gia đình chịu 1.5x", constants.RoomTypeFamilySuite, 200, 1, 2, 1, 30000},
		{"1 người lớn phòng đơn không phụ phí", constants.RoomTypeSingle, 80, 1, 0, 3, 24000},
		{"1 người lớn phòng luxury không phụ phí", constants.RoomTypeLuxury, 150, 1, 0, 1, 15000},
		{"trẻ em không kích hoạt phụ phí", constants.RoomTypeDouble, 100, 2, 1, 1, 10000},
		{"giá lẻ xu vẫn là số nguyên", constants.RoomTypeSingle, 99.99, 1, 0, 1, 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := &models.Room{RoomType: tt.roomType, PricePerNight: tt.price}
			got := PriceCents(room, tt.adults, tt.children, tt.nights)
			if got != tt.want {
				t.Errorf("PriceCents(%s, %d adults, %d nights) = %d, want %d",
					tt.roomType, tt.adults, tt.nights, got, tt.want)
			}
		})
	}
}

func TestPriceCentsNeverNegative(t *testing.T) {
	room := &models.Room{RoomType: constants.RoomTypeDouble, PricePerNight: 0}
	if got := PriceCents(room, 1, 0, 5); got != 0 {
		t.Errorf("phòng giá 0 phải ra 0, got %d", got)
	}
}
