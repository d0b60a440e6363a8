package partyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{db: db, tracker: tracker}
}

// Add saves a new company to the database.
func (r *GormCompanyRepository) Add(ctx context.Context, company *party.Company) error {
	if err := company.Validate(); err != nil {
		return err
	}

	dto := companyFromDomain(company)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(company.ID(), company)
	return nil
}

// Update saves an existing company to the database.
func (r *GormCompanyRepository) Update(ctx context.Context, company *party.Company) error {
	if err := company.Validate(); err != nil {
		return err
	}

	dto := companyFromDomain(company)
	result := r.db.WithContext(ctx).
		Model(&CompanyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", company.ID().String())
	}

	r.tracker.TrackAggregate(company.ID(), company)
	return nil
}

// Get retrieves a company by ID.
func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return companyToDomain(dto)
}

// Delete removes a company by ID. A missing row is not an error.
func (r *GormCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CompanyDTO{}, "id = ?", id.Bytes()).Error
}
