package models

// Employee is keyed by SSN, which must be exactly nine digits and is
// immutable after creation: updates never re-send it.
type Employee struct {
	SSN         string `json:"ssn"`
	FullName    string `json:"fullname"`
	Address     string `json:"address"`
	JobPosition string `json:"jobposition"`
	HotelID     string `json:"hotelid"`
}

func (Employee) EntityKind() Kind { return KindEmployee }

func (e Employee) RecordKey() Key { return Key{ID: e.SSN} }
