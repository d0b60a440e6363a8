// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// OfficeRepoFactory provides access to the office repository within a transaction.
	OfficeRepoFactory interface {
		OfficeRepository() ports.OfficeRepository
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// EmployeeUoW manages transactions for employee operations.
	// Includes the office repository so handlers can verify the office reference.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		OfficeRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// OfficeUoW manages transactions for office operations.
	// Includes the company repository so handlers can verify the company reference.
	OfficeUoW interface {
		TxManager
		OfficeRepoFactory
		CompanyRepoFactory
	}

	// OfficeUoWFactory creates new office unit of work instances.
	OfficeUoWFactory interface {
		Create() OfficeUoW
	}

	// CompanyUoW manages transactions for company-only operations.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	// CompanyUoWFactory creates new company unit of work instances.
	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// UserUoW manages transactions for user registration.
	// Includes the client and employee repositories so handlers can verify
	// the entity the login identity binds to.
	UserUoW interface {
		TxManager
		UserRepoFactory
		ClientRepoFactory
		EmployeeRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
