package party

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through the NewClient factory method.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient")
)

// Client is a customer of the logistics operator who sends or receives
// shipments. Shipments reference clients by ID as sender and receiver.
type Client struct {
	id          kernel.UUID
	name        string
	email       string
	phoneNumber string

	isConstructed bool
}

// NewClient creates a new Client. Name is required; email and phone number
// are free-text contact details.
func NewClient(id kernel.UUID, name, email, phoneNumber string) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Client{
		id:            id,
		name:          name,
		email:         email,
		phoneNumber:   phoneNumber,
		isConstructed: true,
	}, nil
}

// Validate ensures the Client was created through NewClient.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the client's contact email.
func (c *Client) Email() string {
	return c.email
}

// PhoneNumber returns the client's contact phone number.
func (c *Client) PhoneNumber() string {
	return c.phoneNumber
}

// UpdateContact replaces the client's name and contact details.
func (c *Client) UpdateContact(name, email, phoneNumber string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	c.email = email
	c.phoneNumber = phoneNumber
	return nil
}
