package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

// AvailabilityCriteria narrows the room search. Every field is
// optional; empty or zero values are not applied, and a zero date
// window imposes no booking constraint.
type AvailabilityCriteria struct {
	StartDate   time.Time
	EndDate     time.Time
	Capacity    string
	City        string
	CompanyName string
	Category    int
	TotalRooms  int
	MinPrice    float64
	MaxPrice    float64
}

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, criteria AvailabilityCriteria) ([]model.AvailableRoom, error)
	FindCurrentlyFree(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldRoomNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

// bookingOverlapCondition blocks a room when an existing booking takes
// any night in the half-open [start_date, end_date) window. A booking
// that ends the day a stay begins does not conflict. Bookings count
// regardless of status; a converted booking still occupies its dates.
const bookingOverlapCondition = `NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.room_number = r.room_number
	  AND b.hotel_id = r.hotel_id
	  AND b.company_name = r.company_name
	  AND NOT (b.end_date <= :start_date OR b.start_date >= :end_date)
)`

func buildAvailabilityQuery(criteria AvailabilityCriteria) (string, map[string]any) {
	args := map[string]any{}
	conditions := []string{}

	if !criteria.StartDate.IsZero() {
		conditions = append(conditions, bookingOverlapCondition)
		args["start_date"] = criteria.StartDate
		args["end_date"] = criteria.EndDate
	}

	if criteria.Capacity != "" {
		conditions = append(conditions, "r.capacity ILIKE :capacity")
		args["capacity"] = "%" + criteria.Capacity + "%"
	}

	if criteria.City != "" {
		conditions = append(conditions, "h.city ILIKE :city")
		args["city"] = "%" + criteria.City + "%"
	}

	if criteria.CompanyName != "" {
		conditions = append(conditions, "r.company_name ILIKE :company_name")
		args["company_name"] = "%" + criteria.CompanyName + "%"
	}

	if criteria.Category > 0 {
		conditions = append(conditions, "h.category = :category")
		args["category"] = criteria.Category
	}

	if criteria.TotalRooms > 0 {
		conditions = append(conditions, "h.number_of_rooms >= :total_rooms")
		args["total_rooms"] = criteria.TotalRooms
	}

	if criteria.MinPrice > 0 {
		conditions = append(conditions, "r.price >= :min_price")
		args["min_price"] = criteria.MinPrice
	}

	if criteria.MaxPrice > 0 {
		conditions = append(conditions, "r.price <= :max_price")
		args["max_price"] = criteria.MaxPrice
	}

	where := "TRUE"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT r.room_number, r.hotel_id, r.company_name, r.price, r.capacity,
		       r.view_type, r.expandable, h.city, h.category, h.number_of_rooms
		FROM rooms r
		JOIN hotels h ON h.hotel_id = r.hotel_id AND h.company_name = r.company_name
		WHERE %s
		ORDER BY r.room_number ASC`, where)

	return query, args
}

// FindAvailable lists rooms whose bookings leave the requested window
// free, narrowed by the optional hotel and room filters.
func (repo *repositoryImpl) FindAvailable(ctx context.Context, criteria AvailabilityCriteria) ([]model.AvailableRoom, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailable")
	defer scope.End()

	query, args := buildAvailabilityQuery(criteria)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.AvailableRoom

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}

// FindCurrentlyFree lists rooms with no booking spanning the current
// date.
func (repo *repositoryImpl) FindCurrentlyFree(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindCurrentlyFree")
	defer scope.End()

	query := `
		SELECT r.room_number, r.hotel_id, r.company_name, r.price, r.capacity,
		       r.view_type, r.expandable, r.created_at, r.modified_at,
		       r.created_by, r.modified_by
		FROM rooms r
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_number = r.room_number
			  AND b.hotel_id = r.hotel_id
			  AND b.company_name = r.company_name
			  AND CURRENT_DATE BETWEEN b.start_date AND b.end_date
		)
		ORDER BY r.room_number ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	err := repo.db.Read.SelectContext(ctx, &rooms, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find currently free rooms: %w", err)
	}

	return rooms, nil
}
