package cmd

import (
	"logistics/internal/adapters/out/crypto"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     shipment.ValidationPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var policy shipment.ValidationPolicy
	if config.StrictValidation {
		policy = shipment.StrictValidationPolicy()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
	}
}

func (c *CompositionRoot) CreateRegisterShipmentCommandHandler() commands.RegisterShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeliverShipmentCommandHandler() commands.DeliverShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOfficeCommandHandler() commands.CreateOfficeCommandHandler {
	var f commands.OfficeUoWFactory = FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOfficeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCompanyCommandHandler() commands.CreateCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCompanyCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, crypto.NewBcryptHasher(0))
}

func (c *CompositionRoot) CreateCallerResolver() auth.CallerResolver {
	return auth.NewCallerResolver(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByStatusQueryHandler() queries.GetShipmentsByStatusQueryHandler {
	return queries.NewGetShipmentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotDeliveredShipmentsQueryHandler() queries.GetNotDeliveredShipmentsQueryHandler {
	return queries.NewGetNotDeliveredShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByEmployeeQueryHandler() queries.GetShipmentsByEmployeeQueryHandler {
	return queries.NewGetShipmentsByEmployeeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsSentByClientQueryHandler() queries.GetShipmentsSentByClientQueryHandler {
	return queries.NewGetShipmentsSentByClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsReceivedByClientQueryHandler() queries.GetShipmentsReceivedByClientQueryHandler {
	return queries.NewGetShipmentsReceivedByClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateRevenueQueryHandler() queries.CalculateRevenueQueryHandler {
	return queries.NewCalculateRevenueQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncOfficeUoWFactory func() commands.OfficeUoW

func (f FuncOfficeUoWFactory) Create() commands.OfficeUoW {
	return f()
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
