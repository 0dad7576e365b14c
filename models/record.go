package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the six record types the manage surface knows about.
type Kind string

const (
	KindHotel    Kind = "hotels"
	KindRoom     Kind = "rooms"
	KindCustomer Kind = "customers"
	KindEmployee Kind = "employees"
	KindBooking  Kind = "bookings"
	KindRenting  Kind = "rentings"
)

// Kinds lists every managed kind in display order.
func Kinds() []Kind {
	return []Kind{KindCustomer, KindEmployee, KindHotel, KindRoom, KindBooking, KindRenting}
}

// ParseKind maps a user-supplied name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindHotel:
		return KindHotel, nil
	case KindRoom:
		return KindRoom, nil
	case KindCustomer:
		return KindCustomer, nil
	case KindEmployee:
		return KindEmployee, nil
	case KindBooking:
		return KindBooking, nil
	case KindRenting:
		return KindRenting, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Key identifies a single record. ID carries the simple key value
// (customerid, ssn, hotel address, booking/renting id, room number).
// HotelAddress is set only for rooms, whose identity needs both parts.
type Key struct {
	ID           string `json:"id"`
	HotelAddress string `json:"hoteladdress,omitempty"`
}

// Record is the tagged union over the six entity structs.
type Record interface {
	EntityKind() Kind
	RecordKey() Key
}

// FieldMap flattens a record into its JSON field names, for table
// rendering and column-wise access.
func FieldMap(r Record) map[string]any {
	raw, err := json.Marshal(r)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}
