package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldPaymentID = "payment_id"
	FieldRentalID  = "rental_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
)

type Payment struct {
	PaymentID string  `db:"payment_id"`
	RentalID  string  `db:"rental_id"`
	Amount    float64 `db:"amount"`
	Method    string  `db:"method"`
	model.Metadata
}
