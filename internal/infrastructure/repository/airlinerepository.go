package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/mappers"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
	"github.com/flyoffice/directory/internal/shared/db"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// allowedAirlineOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedAirlineOrderByFields = map[string]bool{
	"name":          true,
	"slug":          true,
	"category":      true,
	"rating":        true,
	"total_reviews": true,
	"created_at":    true,
	"updated_at":    true,
}

// AirlineRepositoryImpl implements the airline.Repository interface.
type AirlineRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AirlineMapper
	logger logger.Interface
}

func NewAirlineRepository(db *gorm.DB, logger logger.Interface) airline.Repository {
	return &AirlineRepositoryImpl{
		db:     db,
		mapper: mappers.NewAirlineMapper(),
		logger: logger,
	}
}

func (r *AirlineRepositoryImpl) Create(ctx context.Context, a *airline.Airline) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		r.logger.Errorw("failed to map airline entity to model", "error", err)
		return errors.WrapStoreError("map airline entity", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if mapped := mapAirlineDuplicate(err); mapped != nil {
			return mapped
		}
		r.logger.Errorw("failed to create airline in database", "error", err)
		return errors.WrapStoreError("create airline", err)
	}

	r.logger.Infow("airline created successfully", "id", model.ID, "slug", model.Slug)
	return nil
}

// Update applies optimistic locking on the version column.
func (r *AirlineRepositoryImpl) Update(ctx context.Context, a *airline.Airline) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		r.logger.Errorw("failed to map airline entity to model", "id", a.ID(), "error", err)
		return errors.WrapStoreError("map airline entity", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.AirlineModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"name":            model.Name,
			"slug":            model.Slug,
			"active_name_key": model.ActiveNameKey,
			"logo":            model.Logo,
			"category":        model.Category,
			"fleet":           model.Fleet,
			"services":        model.Services,
			"about_location":  model.AboutLocation,
			"about_overview":  model.AboutOverview,
			"about_network":   model.AboutNetwork,
			"about_fleet":     model.AboutFleet,
			"about_alliance":  model.AboutAlliance,
			"about_support":   model.AboutSupport,
			"contact_phone":   model.ContactPhone,
			"contact_email":   model.ContactEmail,
			"contact_website": model.ContactWebsite,
			"rating":          model.Rating,
			"total_reviews":   model.TotalReviews,
			"is_active":       model.IsActive,
			"version":         model.Version + 1,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		if mapped := mapAirlineDuplicate(result.Error); mapped != nil {
			return mapped
		}
		r.logger.Errorw("failed to update airline", "id", model.ID, "error", result.Error)
		return errors.WrapStoreError("update airline", result.Error)
	}

	if result.RowsAffected == 0 {
		return airline.ErrVersionConflict
	}

	a.MarkPersisted(model.Version + 1)
	r.logger.Infow("airline updated successfully", "id", model.ID, "version", model.Version+1)
	return nil
}

func (r *AirlineRepositoryImpl) GetByID(ctx context.Context, id string) (*airline.Airline, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AirlineRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*airline.Airline, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *AirlineRepositoryImpl) first(ctx context.Context, where string, arg any) (*airline.Airline, error) {
	var model models.AirlineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(where, arg).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get airline", "key", arg, "error", err)
		return nil, errors.WrapStoreError("get airline", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map airline model to entity", "key", arg, "error", err)
		return nil, errors.WrapStoreError("map airline", err)
	}
	return entity, nil
}

func (r *AirlineRepositoryImpl) List(ctx context.Context, filter airline.Filter) ([]*airline.Airline, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AirlineModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.IncludeInactive {
		query = query.Scopes(db.ActiveOnly(""))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count airlines", "error", err)
		return nil, 0, errors.WrapStoreError("count airlines", err)
	}

	var rows []models.AirlineModel
	err := query.
		Order(filter.OrderClause(allowedAirlineOrderByFields, "created_at DESC")).
		Order("id ASC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list airlines", "error", err)
		return nil, 0, errors.WrapStoreError("list airlines", err)
	}

	airlines, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, errors.WrapStoreError("map airlines", err)
	}
	return airlines, total, nil
}

func (r *AirlineRepositoryImpl) SearchCandidates(ctx context.Context, filter airline.SearchFilter) ([]*airline.Airline, error) {
	q := airline.NameKey(filter.Query)
	if q == "" {
		return []*airline.Airline{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	pattern := "%" + escapeLike(q) + "%"
	query := tx.Model(&models.AirlineModel{}).
		Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(about_overview) LIKE ? ESCAPE '!'", pattern, pattern)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.IncludeInactive {
		query = query.Scopes(db.ActiveOnly(""))
	}

	var rows []models.AirlineModel
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to search airlines", "query", q, "error", err)
		return nil, errors.WrapStoreError("search airlines", err)
	}

	airlines, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, errors.WrapStoreError("map airlines", err)
	}
	return airlines, nil
}

func (r *AirlineRepositoryImpl) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var slugs []string
	err := tx.Model(&models.AirlineModel{}).
		Where("slug = ? OR slug LIKE ? ESCAPE '!'", base, escapeLike(base)+"-%").
		Pluck("slug", &slugs).Error
	if err != nil {
		r.logger.Errorw("failed to load slugs", "base", base, "error", err)
		return nil, errors.WrapStoreError("load airline slugs", err)
	}
	return slugs, nil
}

func (r *AirlineRepositoryImpl) ExistsActiveName(ctx context.Context, nameKey, excludeID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AirlineModel{}).Where("active_name_key = ?", nameKey)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.WrapStoreError("check airline name", err)
	}
	return count > 0, nil
}

func (r *AirlineRepositoryImpl) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		ID   string
		Name string
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.AirlineModel{}).Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.WrapStoreError("load airline names", err)
	}
	for _, row := range rows {
		out[row.ID] = row.Name
	}
	return out, nil
}

func mapAirlineDuplicate(err error) error {
	switch {
	case errors.IsDuplicateOn(err, "active_name_key"):
		return errors.NewConflictError("airline name already exists")
	case errors.IsDuplicateOn(err, "slug"):
		return airline.ErrSlugTaken
	case errors.IsDuplicateError(err):
		return errors.NewConflictError("airline already exists")
	}
	return nil
}

// escapeLike escapes LIKE wildcards using '!' so the same SQL runs on SQLite and MySQL.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
