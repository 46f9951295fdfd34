package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListForCustomer(ctx context.Context, customerID string) ([]model.CustomerBooking, error)
	MarkRentedTx(ctx context.Context, tx *sqlx.Tx, bookingID, user string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Most recent stays first, matching how guests read their trip history.
const listForCustomerQuery = `
	SELECT b.booking_id, b.room_number, b.hotel_id, b.company_name,
	       r.price, h.city, b.start_date, b.end_date, b.status, b.created_at
	FROM bookings b
	JOIN rooms r ON r.room_number = b.room_number
	  AND r.hotel_id = b.hotel_id
	  AND r.company_name = b.company_name
	JOIN hotels h ON h.hotel_id = b.hotel_id AND h.company_name = b.company_name
	WHERE b.customer_id = :customer_id
	ORDER BY b.start_date DESC`

// ListForCustomer returns the customer's bookings joined with the room
// price and hotel city.
func (repo *repositoryImpl) ListForCustomer(ctx context.Context, customerID string) ([]model.CustomerBooking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListForCustomer")
	defer scope.End()

	query := listForCustomerQuery

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.CustomerBooking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &bookings, map[string]any{"customer_id": customerID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings for customer: %w", err)
	}

	return bookings, nil
}

// MarkRentedTx flips a RESERVED booking to RENTED. The status predicate
// sits in the same statement that mutates it, so of two racing
// conversions exactly one sees an affected row.
func (repo *repositoryImpl) MarkRentedTx(ctx context.Context, tx *sqlx.Tx, bookingID, user string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.MarkRentedTx")
	defer scope.End()

	query := `
		UPDATE bookings
		SET status = :status_rented, modified_at = :modified_at, modified_by = :modified_by
		WHERE booking_id = :booking_id AND status = :status_reserved`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"status_rented":   constant.BookingStatusRented,
		"status_reserved": constant.BookingStatusReserved,
		"modified_at":     timezone.Now(),
		"modified_by":     user,
		"booking_id":      bookingID,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to mark booking as rented: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}
