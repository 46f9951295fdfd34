package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldEmployeeID  = "employee_id"
	FieldHotelID     = "hotel_id"
	FieldCompanyName = "company_name"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldAddress     = "address"
	FieldSIN         = "sin"
	FieldEmail       = "email"
	FieldPassword    = "password"
)

// Employee belongs to exactly one hotel; (HotelID, CompanyName) is the
// home hotel every rental operation is scoped to.
type Employee struct {
	EmployeeID  string `db:"employee_id"`
	HotelID     int    `db:"hotel_id"`
	CompanyName string `db:"company_name"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Address     string `db:"address"`
	SIN         string `db:"sin"`
	Email       string `db:"email"`
	Password    string `db:"password"`
	model.Metadata
}
