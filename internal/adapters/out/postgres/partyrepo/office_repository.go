package partyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeRepository implements OfficeRepository using GORM.
type GormOfficeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOfficeRepository creates a new GORM office repository.
func NewGormOfficeRepository(db *gorm.DB, tracker aggregateTracker) *GormOfficeRepository {
	return &GormOfficeRepository{db: db, tracker: tracker}
}

// Add saves a new office to the database.
func (r *GormOfficeRepository) Add(ctx context.Context, office *party.Office) error {
	if err := office.Validate(); err != nil {
		return err
	}

	dto := officeFromDomain(office)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(office.ID(), office)
	return nil
}

// Update saves an existing office to the database.
func (r *GormOfficeRepository) Update(ctx context.Context, office *party.Office) error {
	if err := office.Validate(); err != nil {
		return err
	}

	dto := officeFromDomain(office)
	result := r.db.WithContext(ctx).
		Model(&OfficeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("office", office.ID().String())
	}

	r.tracker.TrackAggregate(office.ID(), office)
	return nil
}

// Get retrieves an office by ID.
func (r *GormOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*party.Office, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", id.String())
		}
		return nil, err
	}

	return officeToDomain(dto)
}

// Delete removes an office by ID. A missing row is not an error.
func (r *GormOfficeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OfficeDTO{}, "id = ?", id.Bytes()).Error
}
