package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldHotelID       = "hotel_id"
	FieldCompanyName   = "company_name"
	FieldCategory      = "category"
	FieldNumberOfRooms = "number_of_rooms"
	FieldStreetNumber  = "street_number"
	FieldStreetName    = "street_name"
	FieldAptNumber     = "apt_number"
	FieldCity          = "city"
	FieldState         = "state"
	FieldPostalCode    = "postal_code"
)

// Hotel is identified by the composite key (hotel_id, company_name);
// hotel numbers repeat across chains.
type Hotel struct {
	HotelID       int    `db:"hotel_id"`
	CompanyName   string `db:"company_name"`
	Category      int    `db:"category"`
	NumberOfRooms int    `db:"number_of_rooms"`
	StreetNumber  string `db:"street_number"`
	StreetName    string `db:"street_name"`
	AptNumber     string `db:"apt_number"`
	City          string `db:"city"`
	State         string `db:"state"`
	PostalCode    string `db:"postal_code"`
	model.Metadata
}
