package party

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOfficeIsNotConstructed is returned when an Office instance was not
	// created through the NewOffice factory method.
	ErrOfficeIsNotConstructed = errors.New("Office must be created via NewOffice")
)

// Office is a physical location of the logistics company where shipments
// are dropped off and picked up.
type Office struct {
	id        kernel.UUID
	address   string
	city      string
	companyID kernel.UUID

	isConstructed bool
}

// NewOffice creates a new Office belonging to a company.
func NewOffice(id kernel.UUID, address, city string, companyID kernel.UUID) (*Office, error) {
	if err := errors.Join(
		id.Validate(),
		companyID.Validate(),
	); err != nil {
		return nil, err
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}
	if city == "" {
		return nil, errs.NewValueIsRequiredError("city")
	}

	return &Office{
		id:            id,
		address:       address,
		city:          city,
		companyID:     companyID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Office was created through NewOffice.
func (o *Office) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfficeIsNotConstructed
	}
	return nil
}

// ID returns the office's unique identifier.
func (o *Office) ID() kernel.UUID {
	return o.id
}

// Address returns the street address of the office.
func (o *Office) Address() string {
	return o.address
}

// City returns the city the office is located in.
func (o *Office) City() string {
	return o.city
}

// CompanyID returns the identifier of the owning company.
func (o *Office) CompanyID() kernel.UUID {
	return o.companyID
}

// Relocate changes the office address and city.
func (o *Office) Relocate(address, city string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	o.address = address
	o.city = city
	return nil
}
