package partyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db, tracker: tracker}
}

// Add saves a new employee to the database.
func (r *GormEmployeeRepository) Add(ctx context.Context, employee *party.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(employee)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(employee.ID(), employee)
	return nil
}

// Update saves an existing employee to the database.
func (r *GormEmployeeRepository) Update(ctx context.Context, employee *party.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(employee)
	result := r.db.WithContext(ctx).
		Model(&EmployeeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", employee.ID().String())
	}

	r.tracker.TrackAggregate(employee.ID(), employee)
	return nil
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*party.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return employeeToDomain(dto)
}

// Delete removes an employee by ID. A missing row is not an error.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&EmployeeDTO{}, "id = ?", id.Bytes()).Error
}
