package dto

// RoomSearchRequest is the filter body for the backend's room search.
// Zero-valued criteria are omitted so the backend skips them.
type RoomSearchRequest struct {
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
	Area        string   `json:"area,omitempty"`
	HotelChain  string   `json:"hotel_chain,omitempty"`
	HotelRating int      `json:"hotel_rating,omitempty"`
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
	ViewType    string   `json:"view_type,omitempty"`
}

// BookRoomRequest books a room found through search.
type BookRoomRequest struct {
	RoomNumber int    `json:"roomnumber"`
	CustomerID string `json:"customerid,omitempty"`
	StartDate  string `json:"startdate"`
	EndDate    string `json:"enddate"`
}
