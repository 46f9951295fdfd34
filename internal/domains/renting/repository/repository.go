package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/renting/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Renting interface {
	Insert(ctx context.Context, model model.Renting) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Renting) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Renting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Renting, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]model.EmployeeRental, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Renting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Renting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Renting](model.EntityName, model.TableName, model.FieldRentalID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListForEmployee returns the rentals the employee processed, newest
// first, joined with the guest name and hotel city.
func (repo *repositoryImpl) ListForEmployee(ctx context.Context, employeeID string) ([]model.EmployeeRental, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.ListForEmployee")
	defer scope.End()

	query := `
		SELECT rt.rental_id, rt.booking_id, rt.room_number, rt.hotel_id,
		       rt.company_name, rt.customer_id,
		       c.first_name AS customer_first_name,
		       c.last_name AS customer_last_name,
		       h.city, rt.rental_date, rt.checkout_date
		FROM rentings rt
		JOIN customers c ON c.customer_id = rt.customer_id
		JOIN hotels h ON h.hotel_id = rt.hotel_id AND h.company_name = rt.company_name
		WHERE rt.employee_id = :employee_id
		ORDER BY rt.rental_date DESC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rentals []model.EmployeeRental

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rentals, map[string]any{"employee_id": employeeID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rentals for employee: %w", err)
	}

	return rentals, nil
}
