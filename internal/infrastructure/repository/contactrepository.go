package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/domain/contact"
	vo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/mappers"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
	"github.com/flyoffice/directory/internal/shared/db"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/mapper"
)

var allowedContactOrderByFields = map[string]bool{
	"status":       true,
	"priority":     true,
	"inquiry_type": true,
	"created_at":   true,
	"updated_at":   true,
	"resolved_at":  true,
}

// ContactRepositoryImpl implements the contact.Repository interface.
type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ContactMapper
	logger logger.Interface
}

func NewContactRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mappers.NewContactMapper(),
		logger: logger,
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, c *contact.Contact) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact in database", "error", err)
		return errors.WrapStoreError("create contact", err)
	}

	r.logger.Infow("contact created successfully", "id", model.ID, "inquiry_type", model.InquiryType)
	return nil
}

// Update writes status and triage fields under optimistic locking. Submission
// fields are never rewritten.
func (r *ContactRepositoryImpl) Update(ctx context.Context, c *contact.Contact) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ContactModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"status":      model.Status,
			"priority":    model.Priority,
			"response":    model.Response,
			"assigned_to": model.AssignedTo,
			"resolved_at": model.ResolvedAt,
			"version":     model.Version + 1,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update contact", "id", model.ID, "error", result.Error)
		return errors.WrapStoreError("update contact", result.Error)
	}

	if result.RowsAffected == 0 {
		return contact.ErrVersionConflict
	}

	c.MarkPersisted(model.Version + 1)
	return nil
}

func (r *ContactRepositoryImpl) GetByID(ctx context.Context, id string) (*contact.Contact, error) {
	var model models.ContactModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get contact by ID", "id", id, "error", err)
		return nil, errors.WrapStoreError("get contact", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map contact model to entity", "id", id, "error", err)
		return nil, errors.WrapStoreError("map contact", err)
	}
	return entity, nil
}

func (r *ContactRepositoryImpl) List(ctx context.Context, filter contact.Filter) ([]*contact.Contact, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ContactModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.InquiryType != "" {
		query = query.Where("inquiry_type = ?", filter.InquiryType)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedTo != "" {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.AirlineID != "" {
		query = query.Where("airline_id = ?", filter.AirlineID)
	}
	if filter.OfficeID != "" {
		query = query.Where("office_id = ?", filter.OfficeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count contacts", "error", err)
		return nil, 0, errors.WrapStoreError("count contacts", err)
	}

	var rows []models.ContactModel
	err := query.
		Order(filter.OrderClause(allowedContactOrderByFields, "created_at DESC")).
		Order("id ASC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list contacts", "error", err)
		return nil, 0, errors.WrapStoreError("list contacts", err)
	}

	contacts, err := mapper.MapRows(rows, r.mapper.ToDomain)
	if err != nil {
		return nil, 0, errors.WrapStoreError("map contacts", err)
	}
	return contacts, total, nil
}

func (r *ContactRepositoryImpl) CountOpenByOffice(ctx context.Context, officeID string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.ContactModel{}).
		Where("office_id = ? AND status IN ?", officeID, []string{vo.StatusNew.String(), vo.StatusInProgress.String()}).
		Count(&count).Error
	if err != nil {
		return 0, errors.WrapStoreError("count open contacts", err)
	}
	return count, nil
}
