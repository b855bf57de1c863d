package postgres

import (
	"context"
	"encoding/json"

	"bikeroute/internal/domain/entity"
	domainerrors "bikeroute/internal/domain/errors"
	"bikeroute/internal/domain/repository"
	"bikeroute/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// CreateRoute persists a saved route together with its ordered stops.
func (repo *routeRepository) CreateRoute(ctx context.Context, route *entity.SavedRoute) error {
	routeM, err := fromRouteDomain(route)
	if err != nil {
		return domainerrors.ErrRouteSaveFailed.WrapMessage(err.Error())
	}

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRouteSaveFailed.WrapMessage("route already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrRouteSaveFailed.WrapMessage("route violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// FindRouteByID retrieves a saved route with its stops in travel order.
func (repo *routeRepository) FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.SavedRoute, error) {
	var routeM model.SavedRouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", orderByPosition).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by ID")
	}

	return toRouteDomain(&routeM)
}

// ListRoutes returns saved routes, newest first.
func (repo *routeRepository) ListRoutes(ctx context.Context, limit, offset int) ([]*entity.SavedRoute, error) {
	var routeModels []*model.SavedRouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", orderByPosition).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	routes := make([]*entity.SavedRoute, 0, len(routeModels))
	for _, routeM := range routeModels {
		route, err := toRouteDomain(routeM)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func toRouteDomain(data *model.SavedRouteModel) (*entity.SavedRoute, error) {
	route := &entity.SavedRoute{
		ID:                   data.ID,
		Name:                 data.Name,
		Color:                data.Color,
		Start:                toWaypoint(data.StartPoint.Data()),
		RoundTrip:            data.RoundTrip,
		TotalDistanceMiles:   data.TotalDistanceMiles,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		Profile:              entity.Profile(data.Profile),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if len(data.EndPoint) > 0 && string(data.EndPoint) != "null" {
		var end model.PointData
		if err := json.Unmarshal(data.EndPoint, &end); err != nil {
			return nil, errors.Wrapf(err, "decode end point of route %s", data.ID)
		}
		waypoint := toWaypoint(end)
		route.End = &waypoint
	}

	route.Stops = make([]entity.Waypoint, 0, len(data.Stops))
	for _, stopM := range data.Stops {
		route.Stops = append(route.Stops, entity.Waypoint{
			ID:      stopM.StopID,
			Lat:     stopM.Lat,
			Lng:     stopM.Lng,
			Address: stopM.Address,
		})
	}

	return route, nil
}

func fromRouteDomain(data *entity.SavedRoute) (*model.SavedRouteModel, error) {
	routeM := &model.SavedRouteModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Color:                data.Color,
		StartPoint:           datatypes.NewJSONType(fromWaypoint(data.Start)),
		RoundTrip:            data.RoundTrip,
		TotalDistanceMiles:   data.TotalDistanceMiles,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		Profile:              string(data.Profile),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if data.End != nil {
		end, err := json.Marshal(fromWaypoint(*data.End))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		routeM.EndPoint = datatypes.JSON(end)
	}

	routeM.Stops = make([]*model.RouteStopModel, 0, len(data.Stops))
	for i, stop := range data.Stops {
		routeM.Stops = append(routeM.Stops, &model.RouteStopModel{
			RouteID:  data.ID,
			Position: i,
			StopID:   stop.ID,
			Lat:      stop.Lat,
			Lng:      stop.Lng,
			Address:  stop.Address,
		})
	}

	return routeM, nil
}

func toWaypoint(p model.PointData) entity.Waypoint {
	return entity.Waypoint{ID: p.ID, Lat: p.Lat, Lng: p.Lng, Address: p.Address}
}

func fromWaypoint(w entity.Waypoint) model.PointData {
	return model.PointData{ID: w.ID, Lat: w.Lat, Lng: w.Lng, Address: w.Address}
}
