package services

import (
	"fmt"
	"net/smtp"
	"os"

	"quickstay/models"
)

// bookingConfirmationBody dựng nội dung HTML của email xác nhận.
// Thông tin khách sạn lấy qua booking.Room.Hotel, caller phải preload sẵn.
func bookingConfirmationBody(booking *models.Booking, name string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Xác nhận đặt phòng</title>
		</head>
		<body>
			<h2>Chi tiết đặt chỗ của bạn</h2>
			<p>Thân gửi %s,</p>
			<p>Cảm ơn bạn đã đặt chỗ! Dưới đây là thông tin của bạn:</p>
			<ul>
				<li><strong>Mã đặt chỗ:</strong> %s</li>
				<li><strong>Tên khách sạn:</strong> %s</li>
				<li><strong>Vị trí:</strong> %s</li>
				<li><strong>Nhận phòng:</strong> %s</li>
				<li><strong>Trả phòng:</strong> %s</li>
				<li><strong>Tổng tiền:</strong> %.2f</li>
			</ul>
			<p>Chúng tôi mong đợi được đón tiếp bạn!</p>
			<p>Nếu bạn cần thực hiện bất kỳ thay đổi nào, hãy liên hệ với chúng tôi.</p>
		</body>
		</html>
	`, name, booking.BookingCode, booking.Room.Hotel.Name, booking.Room.Hotel.Address,
		booking.CheckInDate.Format("02/01/2006"), booking.CheckOutDate.Format("02/01/2006"),
		booking.TotalPrice)
}

// SendBookingConfirmation gửi email xác nhận đặt phòng cho khách
func SendBookingConfirmation(booking *models.Booking, email, name string) error {
	from := os.Getenv("SENDER_EMAIL")
	password := os.Getenv("SENDER_EMAIL_PASSWORD")

	host := "smtp.gmail.com"
	port := "587"
	to := []string{email}
	subject := "Subject: Chi tiết đặt phòng khách sạn\n"
	body := bookingConfirmationBody(booking, name)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
