package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomId        uint            `json:"id" gorm:"primaryKey"`
	HotelID       uint            `json:"hotelId"`
	RoomType      string          `json:"roomType"`
	PricePerNight float64         `json:"pricePerNight"`
	Amenities     pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Images        json.RawMessage `json:"images" gorm:"type:json"`
	MinAdults     int             `json:"minAdults" gorm:"default:1"`
	MaxAdults     int             `json:"maxAdults" gorm:"default:2"`
	MinChildren   int             `json:"minChildren" gorm:"default:0"`
	MaxChildren   int             `json:"maxChildren" gorm:"default:2"`
	Num           int             `json:"num"` // số phòng cùng loại, 0 = không giới hạn
	IsAvailable   bool            `json:"isAvailable" gorm:"default:true"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel         Hotel           `json:"hotel" gorm:"foreignKey:HotelID"`
}

// MaxCapacity trần sức chứa của phòng
func (r *Room) MaxCapacity() int {
	return r.MaxAdults + r.MaxChildren
}

// ValidateBounds kiểm tra giới hạn sức chứa hợp lệ
func (r *Room) ValidateBounds() error {
	if r.MinAdults < 0 || r.MinChildren < 0 {
		return fmt.Errorf("invalid bounds: min adults/children must not be negative")
	}
	if r.MinAdults > r.MaxAdults {
		return fmt.Errorf("invalid bounds: minAdults %d > maxAdults %d", r.MinAdults, r.MaxAdults)
	}
	if r.MinChildren > r.MaxChildren {
		return fmt.Errorf("invalid bounds: minChildren %d > maxChildren %d", r.MinChildren, r.MaxChildren)
	}
	return nil
}
