package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "rentings"
	EntityName = "renting"

	FieldRentalID     = "rental_id"
	FieldBookingID    = "booking_id"
	FieldRoomNumber   = "room_number"
	FieldHotelID      = "hotel_id"
	FieldCompanyName  = "company_name"
	FieldCustomerID   = "customer_id"
	FieldEmployeeID   = "employee_id"
	FieldRentalDate   = "rental_date"
	FieldCheckoutDate = "checkout_date"
)

// Renting records an occupied room. BookingID is nil for walk-ins; a
// converted booking keeps the link back to its reservation.
type Renting struct {
	RentalID     string    `db:"rental_id"`
	BookingID    *string   `db:"booking_id"`
	RoomNumber   int       `db:"room_number"`
	HotelID      int       `db:"hotel_id"`
	CompanyName  string    `db:"company_name"`
	CustomerID   string    `db:"customer_id"`
	EmployeeID   string    `db:"employee_id"`
	RentalDate   time.Time `db:"rental_date"`
	CheckoutDate time.Time `db:"checkout_date"`
	model.Metadata
}

// EmployeeRental is a renting joined with the guest name and hotel city
// for the employee dashboard.
type EmployeeRental struct {
	RentalID          string    `db:"rental_id"`
	BookingID         *string   `db:"booking_id"`
	RoomNumber        int       `db:"room_number"`
	HotelID           int       `db:"hotel_id"`
	CompanyName       string    `db:"company_name"`
	CustomerID        string    `db:"customer_id"`
	CustomerFirstName string    `db:"customer_first_name"`
	CustomerLastName  string    `db:"customer_last_name"`
	City              string    `db:"city"`
	RentalDate        time.Time `db:"rental_date"`
	CheckoutDate      time.Time `db:"checkout_date"`
}
