package services

import (
	"context"
	"time"

	"quickstay/constants"
	"quickstay/models"

	"gorm.io/gorm"
)

// AvailabilityService trả lời một phòng có trống trong khoảng ngày hay không,
// dựa trên truy vấn booking chồng lấn
type AvailabilityService struct {
	db *gorm.DB
}

// NewAvailabilityService tạo instance mới của AvailabilityService
func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// CheckAvailable phòng trống khi không có booking nào chồng lấn khoảng ngày
// yêu cầu: checkIn hiện có <= checkOut yêu cầu và checkOut hiện có >= checkIn
// yêu cầu. Booking đã hủy không tính.
func (s *AvailabilityService) CheckAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ? AND status != ? AND check_in_date <= ? AND check_out_date >= ?",
			roomID, constants.BookingStatusCancelled, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
