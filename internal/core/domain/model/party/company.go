package party

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrCompanyIsNotConstructed is returned when a Company instance was not
	// created through the NewCompany factory method.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany")
)

// Company is a logistics operator that owns offices.
type Company struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCompany creates a new Company.
func NewCompany(id kernel.UUID, name string) (*Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Company{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Company was created through NewCompany.
func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

// ID returns the company's unique identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// Name returns the company name.
func (c *Company) Name() string {
	return c.name
}

// Rename changes the company name.
func (c *Company) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
