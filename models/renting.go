package models

import "strconv"

// Renting comes either from direct creation or from converting a
// Booking, which the conversion consumes. PaymentInformation only ever
// holds the masked display label, never a raw card number.
type Renting struct {
	RentingID          int    `json:"rentingid"`
	CustomerID         string `json:"customerid"`
	RoomNumber         int    `json:"roomnumber"`
	EmployeeID         string `json:"employeeid"`
	BookingID          int    `json:"bookingid"`
	StartDate          string `json:"startdate"`
	EndDate            string `json:"enddate"`
	PaymentInformation string `json:"paymentinformation"`
}

func (Renting) EntityKind() Kind { return KindRenting }

func (r Renting) RecordKey() Key { return Key{ID: strconv.Itoa(r.RentingID)} }
