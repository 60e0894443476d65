package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/mappers"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
	"github.com/flyoffice/directory/internal/shared/db"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/mapper"
)

var allowedOfficeOrderByFields = map[string]bool{
	"city":       true,
	"country":    true,
	"slug":       true,
	"created_at": true,
	"updated_at": true,
}

// OfficeRepositoryImpl implements the office.Repository interface.
type OfficeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OfficeMapper
	logger logger.Interface
}

func NewOfficeRepository(db *gorm.DB, logger logger.Interface) office.Repository {
	return &OfficeRepositoryImpl{
		db:     db,
		mapper: mappers.NewOfficeMapper(),
		logger: logger,
	}
}

func (r *OfficeRepositoryImpl) Create(ctx context.Context, o *office.Office) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isOfficeCityDuplicate(err) {
			return errors.NewConflictError("airline already has an office in this city", o.City())
		}
		r.logger.Errorw("failed to create office in database", "error", err)
		return errors.WrapStoreError("create office", err)
	}

	r.logger.Infow("office created successfully", "id", model.ID, "airline_id", model.AirlineID, "slug", model.Slug)
	return nil
}

func (r *OfficeRepositoryImpl) Update(ctx context.Context, o *office.Office) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OfficeModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"slug":       model.Slug,
			"city":       model.City,
			"city_key":   model.CityKey,
			"country":    model.Country,
			"address":    model.Address,
			"phone":      model.Phone,
			"email":      model.Email,
			"opens_at":   model.OpensAt,
			"closes_at":  model.ClosesAt,
			"photo_url":  model.PhotoURL,
			"version":    model.Version + 1,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		if isOfficeCityDuplicate(result.Error) {
			return errors.NewConflictError("airline already has an office in this city", o.City())
		}
		r.logger.Errorw("failed to update office", "id", model.ID, "error", result.Error)
		return errors.WrapStoreError("update office", result.Error)
	}

	if result.RowsAffected == 0 {
		return office.ErrVersionConflict
	}

	o.MarkPersisted(model.Version + 1)
	return nil
}

func (r *OfficeRepositoryImpl) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.OfficeModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete office", "id", id, "error", result.Error)
		return errors.WrapStoreError("delete office", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("office not found", id)
	}

	r.logger.Infow("office deleted successfully", "id", id)
	return nil
}

func (r *OfficeRepositoryImpl) GetByID(ctx context.Context, id string) (*office.Office, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *OfficeRepositoryImpl) GetByAirlineAndCity(ctx context.Context, airlineID, city string) (*office.Office, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).
		Where("airline_id = ? AND city_key = ?", airlineID, office.CityKey(city)))
}

func (r *OfficeRepositoryImpl) first(query *gorm.DB) (*office.Office, error) {
	var model models.OfficeModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get office", "error", err)
		return nil, errors.WrapStoreError("get office", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map office model to entity", "id", model.ID, "error", err)
		return nil, errors.WrapStoreError("map office", err)
	}
	return entity, nil
}

// List joins airlines so offices of deactivated airlines can be hidden.
func (r *OfficeRepositoryImpl) List(ctx context.Context, filter office.Filter) ([]*office.Office, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.OfficeModel{}).
		Joins("JOIN airlines ON airlines.id = offices.airline_id")

	if filter.AirlineID != "" {
		query = query.Where("offices.airline_id = ?", filter.AirlineID)
	}
	if filter.Country != "" {
		query = query.Where("LOWER(offices.country) = LOWER(?)", filter.Country)
	}
	if filter.City != "" {
		query = query.Where("offices.city_key = ?", office.CityKey(filter.City))
	}
	if !filter.IncludeInactive {
		query = query.Scopes(db.ActiveOnly("airlines"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count offices", "error", err)
		return nil, 0, errors.WrapStoreError("count offices", err)
	}

	var rows []models.OfficeModel
	err := query.
		Select("offices.*").
		Order("offices." + filter.OrderClause(allowedOfficeOrderByFields, "created_at DESC")).
		Order("offices.id ASC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list offices", "error", err)
		return nil, 0, errors.WrapStoreError("list offices", err)
	}

	offices, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return offices, total, nil
}

func (r *OfficeRepositoryImpl) ListByAirline(ctx context.Context, airlineID string) ([]*office.Office, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.OfficeModel
	if err := tx.Where("airline_id = ?", airlineID).Order("city ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list offices for airline", "airline_id", airlineID, "error", err)
		return nil, errors.WrapStoreError("list offices for airline", err)
	}
	return r.toDomainList(rows)
}

func (r *OfficeRepositoryImpl) GetCitiesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		ID   string
		City string
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.OfficeModel{}).Select("id", "city").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.WrapStoreError("load office cities", err)
	}
	for _, row := range rows {
		out[row.ID] = row.City
	}
	return out, nil
}

func (r *OfficeRepositoryImpl) toDomainList(rows []models.OfficeModel) ([]*office.Office, error) {
	out, err := mapper.MapRows(rows, r.mapper.ToDomain)
	if err != nil {
		return nil, errors.WrapStoreError("map offices", err)
	}
	return out, nil
}

func isOfficeCityDuplicate(err error) bool {
	return errors.IsDuplicateOn(err, "city_key") || errors.IsDuplicateOn(err, "airline_city")
}
