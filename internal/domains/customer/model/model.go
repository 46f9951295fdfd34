package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldCustomerID       = "customer_id"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldAddress          = "address"
	FieldIDType           = "id_type"
	FieldIDNumber         = "id_number"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldRegistrationDate = "registration_date"
)

type Customer struct {
	CustomerID       string    `db:"customer_id"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Address          string    `db:"address"`
	IDType           string    `db:"id_type"`
	IDNumber         string    `db:"id_number"`
	Email            string    `db:"email"`
	Password         string    `db:"password"`
	RegistrationDate time.Time `db:"registration_date"`
	model.Metadata
}
