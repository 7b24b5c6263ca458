package dto

import "encoding/json"

// CreateRoomRequest dữ liệu tạo phòng mới, ảnh upload qua multipart form
type CreateRoomRequest struct {
	HotelID       uint     `form:"hotelId" json:"hotelId"`
	RoomType      string   `form:"roomType" json:"roomType" binding:"required"`
	PricePerNight float64  `form:"pricePerNight" json:"pricePerNight" binding:"required"`
	Amenities     []string `form:"amenities" json:"amenities"`
	MinAdults     int      `form:"minAdults" json:"minAdults"`
	MaxAdults     int      `form:"maxAdults" json:"maxAdults"`
	MinChildren   int      `form:"minChildren" json:"minChildren"`
	MaxChildren   int      `form:"maxChildren" json:"maxChildren"`
	Num           int      `form:"num" json:"num"`
}

// HotelSummary thông tin khách sạn rút gọn gắn kèm phòng
type HotelSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

// RoomSummary thông tin phòng trả về cho client
type RoomSummary struct {
	ID            uint            `json:"id"`
	RoomType      string          `json:"roomType"`
	PricePerNight float64         `json:"pricePerNight"`
	Amenities     []string        `json:"amenities"`
	Images        json.RawMessage `json:"images"`
	MinAdults     int             `json:"minAdults"`
	MaxAdults     int             `json:"maxAdults"`
	MinChildren   int             `json:"minChildren"`
	MaxChildren   int             `json:"maxChildren"`
	Num           int             `json:"num"`
	IsAvailable   bool            `json:"isAvailable"`
	Hotel         HotelSummary    `json:"hotel"`
}

// RoomQuery tham số lọc danh sách phòng
type RoomQuery struct {
	City     string `form:"city"`
	RoomType string `form:"roomType"`
	Adults   int    `form:"adults"`
	Children int    `form:"children"`
}
