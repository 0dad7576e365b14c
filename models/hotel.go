package models

// Hotel is keyed by its address. JSON tags follow the backend's
// lowercase column naming.
type Hotel struct {
	Address       string `json:"address"`
	ContactEmail  string `json:"contactemail"`
	PhoneNumber   string `json:"phonenumber"`
	NumberOfRooms int    `json:"numberofrooms"`
	Rating        int    `json:"rating"`
	ChainName     string `json:"chainname"`
	ManagerID     string `json:"managerid"`
}

func (Hotel) EntityKind() Kind { return KindHotel }

func (h Hotel) RecordKey() Key { return Key{ID: h.Address} }

// HotelChain records are read-only here: the backend exposes them to
// populate the search form's chain selector.
type HotelChain struct {
	ChainName      string `json:"chainname"`
	Address        string `json:"address"`
	NumberOfHotels int    `json:"numberofhotels"`
	ContactEmail   string `json:"contactemail"`
	PhoneNumber    string `json:"phonenumber"`
}
