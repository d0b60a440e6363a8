package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// UsernameHeader carries the username established by the authentication
// layer in front of this service. The server trusts it as-is.
const UsernameHeader = "X-Username"

const dateLayout = "2006-01-02"

var errMissingUsername = errors.New("missing " + UsernameHeader + " header")

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	callerResolver auth.CallerResolver

	// Command handlers
	registerShipmentHandler commands.RegisterShipmentCommandHandler
	createShipmentHandler   commands.CreateShipmentCommandHandler
	deliverShipmentHandler  commands.DeliverShipmentCommandHandler
	updateShipmentHandler   commands.UpdateShipmentCommandHandler
	deleteShipmentHandler   commands.DeleteShipmentCommandHandler
	createClientHandler     commands.CreateClientCommandHandler
	createEmployeeHandler   commands.CreateEmployeeCommandHandler
	createOfficeHandler     commands.CreateOfficeCommandHandler
	createCompanyHandler    commands.CreateCompanyCommandHandler
	registerUserHandler     commands.RegisterUserCommandHandler

	// Query handlers
	getShipmentHandler          queries.GetShipmentQueryHandler
	getAllShipmentsHandler      queries.GetAllShipmentsQueryHandler
	getShipmentsByStatusHandler queries.GetShipmentsByStatusQueryHandler
	getNotDeliveredHandler      queries.GetNotDeliveredShipmentsQueryHandler
	getByEmployeeHandler        queries.GetShipmentsByEmployeeQueryHandler
	sentByClientHandler         queries.GetShipmentsSentByClientQueryHandler
	receivedByClientHandler     queries.GetShipmentsReceivedByClientQueryHandler
	calculateRevenueHandler     queries.CalculateRevenueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	callerResolver auth.CallerResolver,
	registerShipmentHandler commands.RegisterShipmentCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	deliverShipmentHandler commands.DeliverShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	createClientHandler commands.CreateClientCommandHandler,
	createEmployeeHandler commands.CreateEmployeeCommandHandler,
	createOfficeHandler commands.CreateOfficeCommandHandler,
	createCompanyHandler commands.CreateCompanyCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
	getShipmentsByStatusHandler queries.GetShipmentsByStatusQueryHandler,
	getNotDeliveredHandler queries.GetNotDeliveredShipmentsQueryHandler,
	getByEmployeeHandler queries.GetShipmentsByEmployeeQueryHandler,
	sentByClientHandler queries.GetShipmentsSentByClientQueryHandler,
	receivedByClientHandler queries.GetShipmentsReceivedByClientQueryHandler,
	calculateRevenueHandler queries.CalculateRevenueQueryHandler,
) *Server {
	return &Server{
		callerResolver:              callerResolver,
		registerShipmentHandler:     registerShipmentHandler,
		createShipmentHandler:       createShipmentHandler,
		deliverShipmentHandler:      deliverShipmentHandler,
		updateShipmentHandler:       updateShipmentHandler,
		deleteShipmentHandler:       deleteShipmentHandler,
		createClientHandler:         createClientHandler,
		createEmployeeHandler:       createEmployeeHandler,
		createOfficeHandler:         createOfficeHandler,
		createCompanyHandler:        createCompanyHandler,
		registerUserHandler:         registerUserHandler,
		getShipmentHandler:          getShipmentHandler,
		getAllShipmentsHandler:      getAllShipmentsHandler,
		getShipmentsByStatusHandler: getShipmentsByStatusHandler,
		getNotDeliveredHandler:      getNotDeliveredHandler,
		getByEmployeeHandler:        getByEmployeeHandler,
		sentByClientHandler:         sentByClientHandler,
		receivedByClientHandler:     receivedByClientHandler,
		calculateRevenueHandler:     calculateRevenueHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/register", s.RegisterShipment)
	api.POST("/shipments/:shipmentId/deliver", s.DeliverShipment)
	api.PUT("/shipments/:shipmentId", s.UpdateShipment)
	api.DELETE("/shipments/:shipmentId", s.DeleteShipment)

	api.GET("/shipments", s.GetAllShipments)
	api.GET("/shipments/not-delivered", s.GetNotDeliveredShipments)
	api.GET("/shipments/revenue", s.CalculateRevenue)
	api.GET("/shipments/status/:status", s.GetShipmentsByStatus)
	api.GET("/shipments/:shipmentId", s.GetShipment)
	api.GET("/employees/:employeeId/shipments", s.GetShipmentsByEmployee)
	api.GET("/clients/:clientId/shipments/sent", s.GetShipmentsSentByClient)
	api.GET("/clients/:clientId/shipments/received", s.GetShipmentsReceivedByClient)

	api.POST("/clients", s.CreateClient)
	api.POST("/employees", s.CreateEmployee)
	api.POST("/offices", s.CreateOffice)
	api.POST("/companies", s.CreateCompany)
	api.POST("/users", s.RegisterUser)
	api.GET("/auth/me", s.GetCurrentUser)
}

func (s *Server) resolveCaller(ctx echo.Context) (account.Caller, error) {
	username := ctx.Request().Header.Get(UsernameHeader)
	if username == "" {
		return account.Caller{}, errMissingUsername
	}

	return s.callerResolver.Resolve(ctx.Request().Context(), username)
}

// RegisterShipment handles POST /api/v1/shipments/register.
// The registering employee is derived from the authenticated caller.
func (s *Server) RegisterShipment(ctx echo.Context) error {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	var req RegisterShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequest(ctx, "invalid senderId")
	}
	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return badRequest(ctx, "invalid receiverId")
	}

	cmd, err := commands.NewRegisterShipmentCommand(
		caller, senderID, receiverID, req.DeliveryAddress, req.Weight, req.ToOffice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	registered, err := s.registerShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentToResponse(registered))
}

// CreateShipment handles POST /api/v1/shipments. No caller gate: the
// registeredBy identifier is taken from the body as supplied.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequest(ctx, "invalid senderId")
	}
	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return badRequest(ctx, "invalid receiverId")
	}
	registeredByID, err := kernel.UUIDFromString(req.RegisteredBy)
	if err != nil {
		return badRequest(ctx, "invalid registeredBy")
	}

	cmd, err := commands.NewCreateShipmentCommand(
		senderID, receiverID, req.DeliveryAddress, req.Weight, req.ToOffice, registeredByID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentToResponse(created))
}

// DeliverShipment handles POST /api/v1/shipments/{shipmentId}/deliver.
func (s *Server) DeliverShipment(ctx echo.Context) error {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewDeliverShipmentCommand(caller, shipmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	delivered, err := s.deliverShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(delivered))
}

// UpdateShipment handles PUT /api/v1/shipments/{shipmentId}. The stored
// shipment is overwritten field by field without a state transition check.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var req UpdateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequest(ctx, "invalid senderId")
	}
	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return badRequest(ctx, "invalid receiverId")
	}
	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status")
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID, senderID, receiverID, req.DeliveryAddress, req.Weight, req.ToOffice, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(updated))
}

// DeleteShipment handles DELETE /api/v1/shipments/{shipmentId}.
// Deleting a missing shipment succeeds.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	row, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowToResponse(row))
}

// GetAllShipments handles GET /api/v1/shipments. Employees only.
func (s *Server) GetAllShipments(ctx echo.Context) error {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	query, err := queries.NewGetAllShipmentsQuery(caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowsToResponse(rows))
}

// GetShipmentsByStatus handles GET /api/v1/shipments/status/{status}.
func (s *Server) GetShipmentsByStatus(ctx echo.Context) error {
	status, err := shipment.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "invalid status")
	}

	query, err := queries.NewGetShipmentsByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getShipmentsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowsToResponse(rows))
}

// GetNotDeliveredShipments handles GET /api/v1/shipments/not-delivered.
func (s *Server) GetNotDeliveredShipments(ctx echo.Context) error {
	rows, err := s.getNotDeliveredHandler.Handle(
		ctx.Request().Context(), queries.NewGetNotDeliveredShipmentsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowsToResponse(rows))
}

// GetShipmentsByEmployee handles GET /api/v1/employees/{employeeId}/shipments.
func (s *Server) GetShipmentsByEmployee(ctx echo.Context) error {
	employeeID, err := kernel.UUIDFromString(ctx.Param("employeeId"))
	if err != nil {
		return badRequest(ctx, "invalid employee id")
	}

	query, err := queries.NewGetShipmentsByEmployeeQuery(employeeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getByEmployeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowsToResponse(rows))
}

// GetShipmentsSentByClient handles GET /api/v1/clients/{clientId}/shipments/sent.
func (s *Server) GetShipmentsSentByClient(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientId"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	query, err := queries.NewGetShipmentsSentByClientQuery(clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.sentByClientHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowsToResponse(rows))
}

// GetShipmentsReceivedByClient handles GET /api/v1/clients/{clientId}/shipments/received.
func (s *Server) GetShipmentsReceivedByClient(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientId"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	query, err := queries.NewGetShipmentsReceivedByClientQuery(clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.receivedByClientHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowsToResponse(rows))
}

// CalculateRevenue handles GET /api/v1/shipments/revenue?startDate=&endDate=.
// Dates use the YYYY-MM-DD layout and both bounds are inclusive: the end
// date covers the whole day.
func (s *Server) CalculateRevenue(ctx echo.Context) error {
	start, err := time.Parse(dateLayout, ctx.QueryParam("startDate"))
	if err != nil {
		return badRequest(ctx, "invalid startDate, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, ctx.QueryParam("endDate"))
	if err != nil {
		return badRequest(ctx, "invalid endDate, expected YYYY-MM-DD")
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	query, err := queries.NewCalculateRevenueQuery(start, end)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.calculateRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevenueResponse{
		TotalRevenue:   resp.TotalRevenue,
		ShipmentsCount: resp.ShipmentsCount,
	})
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(req.Name, req.Email, req.PhoneNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, clientToResponse(created))
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var req CreateEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	officeID, err := kernel.UUIDFromString(req.OfficeID)
	if err != nil {
		return badRequest(ctx, "invalid officeId")
	}
	role, err := party.EmployeeRoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "invalid role")
	}

	cmd, err := commands.NewCreateEmployeeCommand(req.Name, officeID, role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, employeeToResponse(created))
}

// CreateOffice handles POST /api/v1/offices.
func (s *Server) CreateOffice(ctx echo.Context) error {
	var req CreateOfficeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "invalid companyId")
	}

	cmd, err := commands.NewCreateOfficeCommand(req.Address, req.City, companyID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createOfficeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, officeToResponse(created))
}

// CreateCompany handles POST /api/v1/companies.
func (s *Server) CreateCompany(ctx echo.Context) error {
	var req CreateCompanyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCompanyCommand(req.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createCompanyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, companyToResponse(created))
}

// RegisterUser handles POST /api/v1/users. Exactly one of clientId and
// employeeId must be supplied, matching the requested role.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "invalid role")
	}

	var clientID, employeeID *kernel.UUID
	if req.ClientID != "" {
		id, err := kernel.UUIDFromString(req.ClientID)
		if err != nil {
			return badRequest(ctx, "invalid clientId")
		}
		clientID = &id
	}
	if req.EmployeeID != "" {
		id, err := kernel.UUIDFromString(req.EmployeeID)
		if err != nil {
			return badRequest(ctx, "invalid employeeId")
		}
		employeeID = &id
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Username, req.Password, role, clientID, employeeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToResponse(created))
}

// GetCurrentUser handles GET /api/v1/auth/me. It returns the user record
// behind the authenticated username.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	username := ctx.Request().Header.Get(UsernameHeader)
	if username == "" {
		return unauthorized(ctx, errMissingUsername.Error())
	}

	user, err := s.callerResolver.ResolveUser(ctx.Request().Context(), username)
	if err != nil {
		return unauthorized(ctx, "unknown user")
	}

	return ctx.JSON(http.StatusOK, userToResponse(user))
}
