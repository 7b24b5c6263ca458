package validator

import (
	"quickstay/constants"
	"quickstay/dto"
	"quickstay/errors"
	"quickstay/models"
	"regexp"
	"time"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Role != constants.RoleGuest && user.Role != constants.RoleHotelOwner {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng trước khi lưu
func ValidateRoom(room *models.Room) error {
	if !constants.IsValidRoomType(room.RoomType) {
		return errors.NewAppError(errors.ErrCodeInvalidRoomType, "Loại phòng không hợp lệ: "+room.RoomType, nil)
	}

	if room.PricePerNight <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng phải lớn hơn 0", nil)
	}

	if err := room.ValidateBounds(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidCapacity, "Giới hạn số khách không hợp lệ", err)
	}

	if room.Num < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng phòng không được âm", nil)
	}

	return nil
}

// ValidateBookingDates parse và kiểm tra cặp ngày nhận/trả phòng
func ValidateBookingDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse("02/01/2006", checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse("02/01/2006", checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateOptimizeRequest validate yêu cầu tối ưu xếp phòng
func ValidateOptimizeRequest(req *dto.OptimizeRequest) (time.Time, time.Time, error) {
	if req.Adults < 1 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidGuests, "Ít nhất cần có 1 người lớn", nil)
	}

	if req.Children < 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidGuests, "Số trẻ em không được âm", nil)
	}

	return ValidateBookingDates(req.CheckInDate, req.CheckOutDate)
}

// ValidateCreateBooking validate yêu cầu đặt phòng, trả về cặp ngày đã parse
func ValidateCreateBooking(req *dto.CreateBookingRequest, userID *uint) (time.Time, time.Time, error) {
	if req.Room == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if req.Adults < 1 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidGuests, "Ít nhất cần có 1 người lớn", nil)
	}

	if req.Children < 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidGuests, "Số trẻ em không được âm", nil)
	}

	if userID == nil {
		if req.GuestName == "" {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
		if req.GuestPhone != "" && !isValidPhone(req.GuestPhone) {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại khách không hợp lệ", nil)
		}
	}

	return ValidateBookingDates(req.CheckInDate, req.CheckOutDate)
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
