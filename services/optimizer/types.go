package optimizer

import (
	"math"
	"time"

	"quickstay/models"
)

// GroupThreshold từ số khách này trở lên thì coi là đoàn/tour group
const GroupThreshold = 10

// Party nhóm khách cần xếp phòng
type Party struct {
	Adults   int
	Children int
	Nights   int
}

// TotalGuests tổng số khách trong nhóm
func (p Party) TotalGuests() int {
	return p.Adults + p.Children
}

// Assignment một phòng cùng số khách được phân bổ vào phòng đó
type Assignment struct {
	Room       *models.Room
	Adults     int
	Children   int
	PriceCents int64
}

// Combination chuỗi các phân bổ phủ đúng toàn bộ nhóm khách
type Combination []Assignment

// Solution một tổ hợp đã được tính giá đầy đủ
type Solution struct {
	Assignments []Assignment
	TotalCents  int64
	TotalRooms  int
	Nights      int
}

// TotalPrice tổng giá theo đơn vị tiền tệ
func (s Solution) TotalPrice() float64 {
	return float64(s.TotalCents) / 100
}

// PricePerPerson giá bình quân mỗi khách
func (s Solution) PricePerPerson(totalGuests int) float64 {
	if totalGuests == 0 {
		return 0
	}
	return s.TotalPrice() / float64(totalGuests)
}

// Recommendation đề xuất một phòng đơn lẻ cho nhóm nhỏ
type Recommendation struct {
	Room        *models.Room
	IsAvailable bool
	TotalCents  int64
	Nights      int
	Adults      int
	Children    int
}

// TotalPrice tổng giá theo đơn vị tiền tệ
func (r Recommendation) TotalPrice() float64 {
	return float64(r.TotalCents) / 100
}

// SearchBudget giới hạn của quá trình tìm kiếm tổ hợp.
// Được truyền tường minh qua các lời gọi thay vì biến đếm dùng chung.
type SearchBudget struct {
	MaxCombinations int // số tổ hợp tối đa được thu thập
	MaxDepth        int // độ sâu tối đa của cây tìm kiếm
	MaxRoomsPerSlot int // số phòng cùng loại tối đa trong một lần phân bổ
	MaxSteps        int // số node tối đa được duyệt, chặn input bệnh hoạn
}

// DefaultBudget giới hạn mặc định
func DefaultBudget() SearchBudget {
	return SearchBudget{
		MaxCombinations: 10,
		MaxDepth:        15,
		MaxRoomsPerSlot: 10,
		MaxSteps:        200000,
	}
}

// Nights số đêm lưu trú, làm tròn lên theo ngày
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
