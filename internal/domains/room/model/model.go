package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNumber  = "room_number"
	FieldHotelID     = "hotel_id"
	FieldCompanyName = "company_name"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldViewType    = "view_type"
	FieldExpandable  = "expandable"
)

// Room is identified by (room_number, hotel_id, company_name); room
// numbers repeat across hotels.
type Room struct {
	RoomNumber  int     `db:"room_number"`
	HotelID     int     `db:"hotel_id"`
	CompanyName string  `db:"company_name"`
	Price       float64 `db:"price"`
	Capacity    string  `db:"capacity"`
	ViewType    string  `db:"view_type"`
	Expandable  bool    `db:"expandable"`
	model.Metadata
}

// AvailableRoom is a room joined with the hotel columns the availability
// search filters on.
type AvailableRoom struct {
	RoomNumber    int     `db:"room_number"`
	HotelID       int     `db:"hotel_id"`
	CompanyName   string  `db:"company_name"`
	Price         float64 `db:"price"`
	Capacity      string  `db:"capacity"`
	ViewType      string  `db:"view_type"`
	Expandable    bool    `db:"expandable"`
	City          string  `db:"city"`
	Category      int     `db:"category"`
	NumberOfRooms int     `db:"number_of_rooms"`
}
