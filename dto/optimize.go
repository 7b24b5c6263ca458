package dto

// OptimizeRequest yêu cầu tối ưu xếp phòng cho một nhóm khách
type OptimizeRequest struct {
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	City         string `json:"city"`
}

// SolutionRoomResponse một phòng trong phương án kèm số khách và giá
type SolutionRoomResponse struct {
	Room     RoomSummary `json:"room"`
	Adults   int         `json:"adults"`
	Children int         `json:"children"`
	Price    float64     `json:"price"`
}

// SolutionResponse một phương án xếp phòng đã tính giá cho đoàn
type SolutionResponse struct {
	Rooms          []SolutionRoomResponse `json:"rooms"`
	TotalPrice     float64                `json:"totalPrice"`
	TotalRooms     int                    `json:"totalRooms"`
	PricePerPerson float64                `json:"pricePerPerson"`
	Nights         int                    `json:"nights"`
}

// OptimizeGroupResponse kết quả nhánh đoàn lớn
type OptimizeGroupResponse struct {
	Solutions   []SolutionResponse `json:"solutions"`
	TotalGuests int                `json:"totalGuests"`
	Nights      int                `json:"nights"`
	Message     string             `json:"message"`
	Suggestion  string             `json:"suggestion,omitempty"`
}

// RecommendationResponse đề xuất một phòng riêng lẻ cho nhóm nhỏ
type RecommendationResponse struct {
	Room           RoomSummary `json:"room"`
	IsAvailable    bool        `json:"isAvailable"`
	TotalPrice     float64     `json:"totalPrice"`
	PricePerPerson float64     `json:"pricePerPerson"`
	Nights         int         `json:"nights"`
	Adults         int         `json:"adults"`
	Children       int         `json:"children"`
}

// OptimizeIndividualResponse kết quả nhánh nhóm nhỏ
type OptimizeIndividualResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	TotalGuests     int                      `json:"totalGuests"`
	Nights          int                      `json:"nights"`
	Suggestion      string                   `json:"suggestion,omitempty"`
}
