package models

import "strconv"

// Room identity is composite: roomnumber alone repeats across hotels,
// so update/delete must carry the hotel address as well.
type Room struct {
	RoomNumber   int     `json:"roomnumber"`
	HotelAddress string  `json:"hoteladdress"`
	Price        float64 `json:"price"`
	Amenities    string  `json:"amenities"`
	Problems     string  `json:"problems"`
	Capacity     int     `json:"capacity"`
	ViewType     string  `json:"viewtype"`
	Extendable   bool    `json:"extendable"`
}

func (Room) EntityKind() Kind { return KindRoom }

func (r Room) RecordKey() Key {
	return Key{ID: strconv.Itoa(r.RoomNumber), HotelAddress: r.HotelAddress}
}
