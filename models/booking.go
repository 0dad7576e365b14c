package models

import "strconv"

// Booking ids are assigned by the backend; create payloads omit them.
// Dates travel as ISO-8601 strings end to end.
type Booking struct {
	BookingID  int    `json:"bookingid"`
	CustomerID string `json:"customerid"`
	RoomNumber int    `json:"roomnumber"`
	StartDate  string `json:"startdate"`
	EndDate    string `json:"enddate"`
}

func (Booking) EntityKind() Kind { return KindBooking }

func (b Booking) RecordKey() Key { return Key{ID: strconv.Itoa(b.BookingID)} }
