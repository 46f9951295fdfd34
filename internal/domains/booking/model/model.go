package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldBookingID   = "booking_id"
	FieldRoomNumber  = "room_number"
	FieldHotelID     = "hotel_id"
	FieldCompanyName = "company_name"
	FieldCustomerID  = "customer_id"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldStatus      = "status"
)

// Booking is a reservation for [StartDate, EndDate). Status moves from
// RESERVED to RENTED exactly once, at conversion.
type Booking struct {
	BookingID   string    `db:"booking_id"`
	RoomNumber  int       `db:"room_number"`
	HotelID     int       `db:"hotel_id"`
	CompanyName string    `db:"company_name"`
	CustomerID  string    `db:"customer_id"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Status      string    `db:"status"`
	model.Metadata
}

// CustomerBooking is a booking joined with the room price and hotel city
// for the customer dashboard.
type CustomerBooking struct {
	BookingID   string    `db:"booking_id"`
	RoomNumber  int       `db:"room_number"`
	HotelID     int       `db:"hotel_id"`
	CompanyName string    `db:"company_name"`
	Price       float64   `db:"price"`
	City        string    `db:"city"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}
