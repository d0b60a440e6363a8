// Package partyrepo persists the party entities (clients, employees,
// offices, companies) with GORM. Each entity has its own repository; they
// share this package because the mapping is uniform and the entities are
// plain records without nested state.
package partyrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// ClientDTO is the database row for a client.
type ClientDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Email       string
	PhoneNumber string
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

// EmployeeDTO is the database row for an employee.
type EmployeeDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	OfficeID uuid.UUID `gorm:"type:uuid;index"`
	Role     int
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

// OfficeDTO is the database row for an office.
type OfficeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address   string
	City      string
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "offices".
func (OfficeDTO) TableName() string {
	return "offices"
}

// CompanyDTO is the database row for a company.
type CompanyDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName overrides GORM's default naming to use "companies".
func (CompanyDTO) TableName() string {
	return "companies"
}

func clientFromDomain(c *party.Client) ClientDTO {
	return ClientDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
	}
}

func clientToDomain(dto ClientDTO) (*party.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return party.NewClient(id, dto.Name, dto.Email, dto.PhoneNumber)
}

func employeeFromDomain(e *party.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:       e.ID().Bytes(),
		Name:     e.Name(),
		OfficeID: e.OfficeID().Bytes(),
		Role:     int(e.Role()),
	}
}

func employeeToDomain(dto EmployeeDTO) (*party.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	officeID, err := kernel.UUIDFromBytes(dto.OfficeID[:])
	if err != nil {
		return nil, err
	}
	return party.NewEmployee(id, dto.Name, officeID, party.EmployeeRole(dto.Role))
}

func officeFromDomain(o *party.Office) OfficeDTO {
	return OfficeDTO{
		ID:        o.ID().Bytes(),
		Address:   o.Address(),
		City:      o.City(),
		CompanyID: o.CompanyID().Bytes(),
	}
}

func officeToDomain(dto OfficeDTO) (*party.Office, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	return party.NewOffice(id, dto.Address, dto.City, companyID)
}

func companyFromDomain(c *party.Company) CompanyDTO {
	return CompanyDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

func companyToDomain(dto CompanyDTO) (*party.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return party.NewCompany(id, dto.Name)
}
