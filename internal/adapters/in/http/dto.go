package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/domain/model/shipment"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterShipmentRequest is the body for the employee-gated registration path.
type RegisterShipmentRequest struct {
	SenderID        string  `json:"senderId"`
	ReceiverID      string  `json:"receiverId"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Weight          float64 `json:"weight"`
	ToOffice        bool    `json:"toOffice"`
}

// CreateShipmentRequest is the body for the ungated creation path.
// RegisteredBy is taken as supplied.
type CreateShipmentRequest struct {
	SenderID        string  `json:"senderId"`
	ReceiverID      string  `json:"receiverId"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Weight          float64 `json:"weight"`
	ToOffice        bool    `json:"toOffice"`
	RegisteredBy    string  `json:"registeredBy"`
}

// UpdateShipmentRequest is the body for the raw overwrite path.
type UpdateShipmentRequest struct {
	SenderID        string  `json:"senderId"`
	ReceiverID      string  `json:"receiverId"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Weight          float64 `json:"weight"`
	ToOffice        bool    `json:"toOffice"`
	Status          string  `json:"status"`
}

// ShipmentResponse is the wire representation of a shipment.
type ShipmentResponse struct {
	ID               string     `json:"id"`
	SenderID         string     `json:"senderId"`
	ReceiverID       string     `json:"receiverId"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	Weight           float64    `json:"weight"`
	ToOffice         bool       `json:"toOffice"`
	Status           string     `json:"status"`
	RegistrationDate time.Time  `json:"registrationDate"`
	DeliveryDate     *time.Time `json:"deliveryDate,omitempty"`
	RegisteredBy     string     `json:"registeredBy"`
	Price            float64    `json:"price"`
}

// RevenueResponse is the wire representation of the revenue aggregation.
type RevenueResponse struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	ShipmentsCount int     `json:"shipmentsCount"`
}

// CreateClientRequest is the body for client creation.
type CreateClientRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ClientResponse is the wire representation of a client.
type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateEmployeeRequest is the body for employee creation.
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	OfficeID string `json:"officeId"`
	Role     string `json:"role"`
}

// EmployeeResponse is the wire representation of an employee.
type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OfficeID string `json:"officeId"`
	Role     string `json:"role"`
}

// CreateOfficeRequest is the body for office creation.
type CreateOfficeRequest struct {
	Address   string `json:"address"`
	City      string `json:"city"`
	CompanyID string `json:"companyId"`
}

// OfficeResponse is the wire representation of an office.
type OfficeResponse struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	City      string `json:"city"`
	CompanyID string `json:"companyId"`
}

// CreateCompanyRequest is the body for company creation.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse is the wire representation of a company.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegisterUserRequest is the body for user registration. Exactly one of
// clientId/employeeId must be set, matching role.
type RegisterUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	ClientID   string `json:"clientId,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// UserResponse is the wire representation of a login identity.
// The password hash is never exposed.
type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	ClientID   string `json:"clientId,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

func shipmentToResponse(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:               s.ID().String(),
		SenderID:         s.SenderID().String(),
		ReceiverID:       s.ReceiverID().String(),
		DeliveryAddress:  s.DeliveryAddress(),
		Weight:           s.Weight(),
		ToOffice:         s.ToOffice(),
		Status:           s.Status().String(),
		RegistrationDate: s.RegistrationDate(),
		DeliveryDate:     s.DeliveryDate(),
		RegisteredBy:     s.RegisteredByID().String(),
		Price:            s.Price(),
	}
}

func shipmentRowToResponse(row queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:               row.ID.String(),
		SenderID:         row.SenderID.String(),
		ReceiverID:       row.ReceiverID.String(),
		DeliveryAddress:  row.DeliveryAddress,
		Weight:           row.Weight,
		ToOffice:         row.ToOffice,
		Status:           row.Status.String(),
		RegistrationDate: row.RegistrationDate,
		DeliveryDate:     row.DeliveryDate,
		RegisteredBy:     row.RegisteredByID.String(),
		Price:            row.Price,
	}
}

func shipmentRowsToResponse(rows []queries.ShipmentResponse) []ShipmentResponse {
	responses := make([]ShipmentResponse, len(rows))
	for i, row := range rows {
		responses[i] = shipmentRowToResponse(row)
	}
	return responses
}

func clientToResponse(c *party.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
	}
}

func employeeToResponse(e *party.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID().String(),
		Name:     e.Name(),
		OfficeID: e.OfficeID().String(),
		Role:     e.Role().String(),
	}
}

func officeToResponse(o *party.Office) OfficeResponse {
	return OfficeResponse{
		ID:        o.ID().String(),
		Address:   o.Address(),
		City:      o.City(),
		CompanyID: o.CompanyID().String(),
	}
}

func companyToResponse(c *party.Company) CompanyResponse {
	return CompanyResponse{
		ID:   c.ID().String(),
		Name: c.Name(),
	}
}

func userToResponse(u *account.User) UserResponse {
	resp := UserResponse{
		ID:       u.ID().String(),
		Username: u.Username(),
		Role:     u.Role().String(),
	}
	if id := u.ClientID(); id != nil {
		resp.ClientID = id.String()
	}
	if id := u.EmployeeID(); id != nil {
		resp.EmployeeID = id.String()
	}
	return resp
}
