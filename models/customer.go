package models

type Customer struct {
	CustomerID string `json:"customerid"`
	FullName   string `json:"fullname"`
	Address    string `json:"address"`
}

func (Customer) EntityKind() Kind { return KindCustomer }

func (c Customer) RecordKey() Key { return Key{ID: c.CustomerID} }
