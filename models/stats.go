package models

// Rows from the backend's read-only aggregate views. The aggregation
// itself lives in the backend; these are display shapes only.

type AvailableRoomsPerArea struct {
	Area           string `json:"area"`
	AvailableRooms int    `json:"available_rooms"`
}

type HotelRoomCapacity struct {
	HotelAddress        string  `json:"hotel_address"`
	HotelChain          string  `json:"hotel_chain"`
	TotalRooms          int     `json:"total_rooms"`
	TotalCapacity       int     `json:"total_capacity"`
	AverageRoomCapacity float64 `json:"average_room_capacity"`
}
