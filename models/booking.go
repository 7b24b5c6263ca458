package models

import (
	"time"
)

type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	BookingCode   string    `json:"bookingCode" gorm:"uniqueIndex"`
	UserID        *uint     `json:"userId"`
	User          *User     `json:"user" gorm:"foreignKey:UserID"`
	RoomID        uint      `json:"roomId"`
	Room          Room      `json:"room" gorm:"foreignKey:RoomID"`
	HotelID       uint      `json:"hotelId"`
	Hotel         Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	Guests        int       `json:"guests"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Status        int       `json:"status" gorm:"default:0"`
	TotalPrice    float64   `json:"totalPrice"`
	PaymentStatus int       `json:"paymentStatus" gorm:"default:0"`
	GuestName     string    `json:"guestName,omitempty"`
	GuestEmail    string    `json:"guestEmail,omitempty"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
