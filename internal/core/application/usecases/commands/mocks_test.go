package commands_test

import (
	"context"
	"errors"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *party.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Update(_ context.Context, _ *party.Client) error { return nil }
func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*party.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}
func (m *MockClientRepository) Delete(_ context.Context, _ kernel.UUID) error { return nil }

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *party.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEmployeeRepository) Update(_ context.Context, _ *party.Employee) error { return nil }
func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*party.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Employee), args.Error(1)
}
func (m *MockEmployeeRepository) Delete(_ context.Context, _ kernel.UUID) error { return nil }

type MockOfficeRepository struct{ mock.Mock }

func (m *MockOfficeRepository) Add(ctx context.Context, o *party.Office) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfficeRepository) Update(_ context.Context, _ *party.Office) error { return nil }
func (m *MockOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*party.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Office), args.Error(1)
}
func (m *MockOfficeRepository) Delete(_ context.Context, _ kernel.UUID) error { return nil }

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *party.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCompanyRepository) Update(_ context.Context, _ *party.Company) error { return nil }
func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Company), args.Error(1)
}
func (m *MockCompanyRepository) Delete(_ context.Context, _ kernel.UUID) error { return nil }

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(_ context.Context, _ kernel.UUID) (*account.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockUserRepository) GetByUsername(_ context.Context, _ string) (*account.User, error) {
	return nil, errors.New("not implemented in mock")
}

type MockClientUoW struct{ mock.Mock }

func (m *MockClientUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockClientUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockClientUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockClientUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockEmployeeUoW struct{ mock.Mock }

func (m *MockEmployeeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEmployeeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEmployeeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEmployeeUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}
func (m *MockEmployeeUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockOfficeUoW struct{ mock.Mock }

func (m *MockOfficeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOfficeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOfficeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOfficeUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}
func (m *MockOfficeUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

type MockOfficeUoWFactory struct{ mock.Mock }

func (m *MockOfficeUoWFactory) Create() commands.OfficeUoW {
	args := m.Called()
	return args.Get(0).(commands.OfficeUoW)
}

type MockCompanyUoW struct{ mock.Mock }

func (m *MockCompanyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompanyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompanyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompanyUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

type MockCompanyUoWFactory struct{ mock.Mock }

func (m *MockCompanyUoWFactory) Create() commands.CompanyUoW {
	args := m.Called()
	return args.Get(0).(commands.CompanyUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockUserUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}
func (m *MockUserUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func employeeCaller(employeeID kernel.UUID) account.Caller {
	caller, err := account.NewCaller(account.RoleEmployee, &employeeID, nil)
	if err != nil {
		panic(err)
	}
	return caller
}

func clientCaller(clientID kernel.UUID) account.Caller {
	caller, err := account.NewCaller(account.RoleClient, nil, &clientID)
	if err != nil {
		panic(err)
	}
	return caller
}
