package dto

import "hotel-admin/models"

// ConvertRequest is what the surfaces accept: the raw (possibly
// formatted) card number. Only the derived masked label leaves the
// process.
type ConvertRequest struct {
	CardNumber string `json:"cardnumber" binding:"required"`
}

// ConvertToRentingWire is the backend conversion body.
type ConvertToRentingWire struct {
	PaymentInfo string `json:"payment_info"`
	EmployeeSSN string `json:"employee_ssn"`
}

// StatsOverview bundles the two read-only aggregate views, which are
// always fetched together.
type StatsOverview struct {
	AvailableRoomsPerArea []models.AvailableRoomsPerArea `json:"available_rooms_per_area"`
	HotelRoomCapacity     []models.HotelRoomCapacity     `json:"hotel_room_capacity"`
}
