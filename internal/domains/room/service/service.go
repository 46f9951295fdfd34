package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	hotelModel "hotelier/internal/domains/hotel/model"
	hotelRepo "hotelier/internal/domains/hotel/repository"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, roomNumber, hotelID int, companyName string) (dto.RoomResponse, error)
	UpdatePrice(ctx context.Context, req dto.UpdateRoomPriceRequest) error
	UpdateCapacity(ctx context.Context, req dto.UpdateRoomCapacityRequest) error
	UpdateViewType(ctx context.Context, req dto.UpdateRoomViewTypeRequest) error
	Delete(ctx context.Context, req dto.DeleteRoomRequest) error
	FindAvailable(ctx context.Context, req dto.AvailabilityRequest) (dto.GetAvailableRoomsResponse, error)
	FindCurrentlyFree(ctx context.Context) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, hotelRepo hotelRepo.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByHotelKey(req.HotelID, req.CompanyName, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	roomFilter := shared.FilterByRoomKey(req.RoomNumber, req.HotelID, req.CompanyName, model.TableName)

	roomExists, err := s.repo.Exist(ctx, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if roomExists {
		return failure.Conflict("room already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomNumber, hotelID int, companyName string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByRoomKey(roomNumber, hotelID, companyName, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.CompanyName == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) UpdatePrice(ctx context.Context, req dto.UpdateRoomPriceRequest) error {
	return s.updateColumn(ctx, "UpdatePrice", req, req.RoomNumber, req.HotelID, req.CompanyName)
}

func (s *serviceImpl) UpdateCapacity(ctx context.Context, req dto.UpdateRoomCapacityRequest) error {
	return s.updateColumn(ctx, "UpdateCapacity", req, req.RoomNumber, req.HotelID, req.CompanyName)
}

func (s *serviceImpl) UpdateViewType(ctx context.Context, req dto.UpdateRoomViewTypeRequest) error {
	return s.updateColumn(ctx, "UpdateViewType", req, req.RoomNumber, req.HotelID, req.CompanyName)
}

// updateColumn applies one of the fixed single-column room updates. The
// request struct carries exactly one db-tagged field, so TransformFields
// never touches anything else.
func (s *serviceImpl) updateColumn(ctx context.Context, operation string, req any, roomNumber, hotelID int, companyName string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+operation)
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByRoomKey(roomNumber, hotelID, companyName, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteRoomRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByRoomKey(req.RoomNumber, req.HotelID, req.CompanyName, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
	}()

	return nil
}

// FindAvailable runs the date-ranged availability search. Results are
// never cached; availability must reflect the latest bookings.
func (s *serviceImpl) FindAvailable(ctx context.Context, req dto.AvailabilityRequest) (res dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	criteria, err := req.ToCriteria()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	rooms, err := s.repo.FindAvailable(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("failed to find available rooms")

		return res, fmt.Errorf("failed to find available rooms: %w", err)
	}

	res.FromModels(rooms)

	return res, nil
}

func (s *serviceImpl) FindCurrentlyFree(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindCurrentlyFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.FindCurrentlyFree(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to find currently free rooms")

		return res, fmt.Errorf("failed to find currently free rooms: %w", err)
	}

	res.FromModels(rooms, len(rooms), 0)

	return res, nil
}
