package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	Add(ctx context.Context, client *party.Client) error
	Update(ctx context.Context, client *party.Client) error

	// Get returns an ObjectNotFoundError when no such client exists.
	Get(ctx context.Context, id kernel.UUID) (*party.Client, error)

	// Delete removes a client; deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	Add(ctx context.Context, employee *party.Employee) error
	Update(ctx context.Context, employee *party.Employee) error

	// Get returns an ObjectNotFoundError when no such employee exists.
	Get(ctx context.Context, id kernel.UUID) (*party.Employee, error)

	// Delete removes an employee; deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}

// OfficeRepository defines the persistence contract for offices.
type OfficeRepository interface {
	Add(ctx context.Context, office *party.Office) error
	Update(ctx context.Context, office *party.Office) error

	// Get returns an ObjectNotFoundError when no such office exists.
	Get(ctx context.Context, id kernel.UUID) (*party.Office, error)

	// Delete removes an office; deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CompanyRepository defines the persistence contract for companies.
type CompanyRepository interface {
	Add(ctx context.Context, company *party.Company) error
	Update(ctx context.Context, company *party.Company) error

	// Get returns an ObjectNotFoundError when no such company exists.
	Get(ctx context.Context, id kernel.UUID) (*party.Company, error)

	// Delete removes a company; deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}
