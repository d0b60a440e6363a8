package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Pricing constants. The price of a shipment is a fixed base plus a per-kilogram
// factor that depends on whether it is delivered to an office or to an address.
const (
	BasePrice     = 10.0
	OfficeFactor  = 1.3
	AddressFactor = 1.8
)

// Shipment is the aggregate root for a parcel tracked from registration to
// delivery.
//
// Shipment maintains these invariants:
//   - Must have valid sender, receiver, and registering employee identifiers
//   - Must have a non-empty delivery address
//   - Always carries a status and a registration date once constructed
//   - DeliveryDate is set when Deliver stamps the Delivered status
//
// The delivery-date/status correspondence is deliberately NOT re-checked by
// Overwrite: the raw update path accepts any status without touching the
// delivery date, matching the documented looseness of the update operation.
//
// Weight positivity and sender/receiver distinctness are not enforced here;
// see ValidationPolicy for the opt-in checks.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// senderID references the client sending the parcel
	senderID kernel.UUID

	// receiverID references the client receiving the parcel
	receiverID kernel.UUID

	// deliveryAddress is the free-text destination address
	deliveryAddress string

	// weight is the parcel weight in kilograms
	weight float64

	// toOffice selects office delivery (true) or address delivery (false)
	toOffice bool

	// status is the current state in the shipment lifecycle
	status Status

	// registrationDate is stamped once when the shipment is created
	registrationDate time.Time

	// deliveryDate is stamped by Deliver; nil until then
	deliveryDate *time.Time

	// registeredByID references the employee who registered the shipment
	registeredByID kernel.UUID

	// isConstructed ensures the shipment was created via a factory method
	isConstructed bool
}

// NewShipment creates a new Shipment. This is the single creation path for
// both the registered and the unregistered entry points: the status is forced
// to Shipped and the registration date is stamped from registeredAt regardless
// of what the caller intended.
//
// registeredByID identifies the registering employee. Whether it actually
// references an existing employee is the caller's concern: the role-gated
// registration path resolves it from the caller identity, while the
// unregistered path trusts the supplied value as-is.
func NewShipment(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	deliveryAddress string,
	weight float64,
	toOffice bool,
	registeredByID kernel.UUID,
	registeredAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Shipped,
		toOffice:      toOffice,
		weight:        weight,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setSenderID(senderID),
		s.setReceiverID(receiverID),
		s.setDeliveryAddress(deliveryAddress),
		s.setRegisteredByID(registeredByID),
		s.setRegistrationDate(registeredAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
//
// Unlike NewShipment it accepts any valid status and an optional delivery
// date. It does not require the delivery date to match the status: rows
// written through the raw update path may legitimately violate that
// correspondence and must still be readable.
func RestoreShipment(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	deliveryAddress string,
	weight float64,
	toOffice bool,
	status Status,
	registrationDate time.Time,
	deliveryDate *time.Time,
	registeredByID kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		toOffice:      toOffice,
		weight:        weight,
		deliveryDate:  deliveryDate,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setSenderID(senderID),
		s.setReceiverID(receiverID),
		s.setDeliveryAddress(deliveryAddress),
		s.setRegisteredByID(registeredByID),
		s.setRegistrationDate(registrationDate),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory method. Returns ErrShipmentIsNotConstructed otherwise.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// SenderID returns the identifier of the sending client.
func (s *Shipment) SenderID() kernel.UUID {
	return s.senderID
}

// ReceiverID returns the identifier of the receiving client.
func (s *Shipment) ReceiverID() kernel.UUID {
	return s.receiverID
}

// DeliveryAddress returns the free-text destination address.
func (s *Shipment) DeliveryAddress() string {
	return s.deliveryAddress
}

// Weight returns the parcel weight in kilograms.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// ToOffice reports whether the shipment is delivered to an office.
func (s *Shipment) ToOffice() bool {
	return s.toOffice
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// RegistrationDate returns the date the shipment was registered.
func (s *Shipment) RegistrationDate() time.Time {
	return s.registrationDate
}

// DeliveryDate returns the date the shipment was delivered,
// or nil if it has not been delivered.
func (s *Shipment) DeliveryDate() *time.Time {
	return s.deliveryDate
}

// RegisteredByID returns the identifier of the registering employee.
func (s *Shipment) RegisteredByID() kernel.UUID {
	return s.registeredByID
}

// Deliver marks the shipment as delivered and stamps the delivery date.
//
// Deliver is not idempotent: calling it again on an already delivered
// shipment succeeds and overwrites the delivery date with the new timestamp.
// Last write wins; there is no concurrency token on the aggregate.
func (s *Shipment) Deliver(at time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveryDate = &at
	return nil
}

// Overwrite replaces the mutable fields of the shipment with the supplied
// values, bypassing the delivery state machine entirely.
//
// Any valid status is accepted, including jumping straight to Delivered
// without a delivery date. The registration date, delivery date, and
// registering employee are left untouched. This is the explicit unsafe
// update path; callers wanting guarded transitions use Deliver.
func (s *Shipment) Overwrite(
	senderID kernel.UUID,
	receiverID kernel.UUID,
	deliveryAddress string,
	weight float64,
	toOffice bool,
	status Status,
) error {
	if err := errors.Join(
		senderID.Validate(),
		receiverID.Validate(),
		status.Validate(),
	); err != nil {
		return err
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	s.senderID = senderID
	s.receiverID = receiverID
	s.deliveryAddress = deliveryAddress
	s.weight = weight
	s.toOffice = toOffice
	s.status = status
	return nil
}

// Price computes the delivery price of the shipment.
//
// price = BasePrice + weight * (OfficeFactor if toOffice else AddressFactor)
//
// Pure and deterministic; used by the revenue aggregation over delivered
// shipments.
func (s *Shipment) Price() float64 {
	return CalculatePrice(s.weight, s.toOffice)
}

// CalculatePrice prices a shipment from its weight and delivery mode.
// Exposed separately so read models can price rows without restoring
// the full aggregate.
func CalculatePrice(weight float64, toOffice bool) float64 {
	factor := AddressFactor
	if toOffice {
		factor = OfficeFactor
	}
	return BasePrice + weight*factor
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	s.senderID = id
	return nil
}

func (s *Shipment) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	s.receiverID = id
	return nil
}

func (s *Shipment) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	s.deliveryAddress = address
	return nil
}

func (s *Shipment) setRegisteredByID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("registeredBy: %w", err)
	}
	s.registeredByID = id
	return nil
}

func (s *Shipment) setRegistrationDate(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("registrationDate")
	}
	s.registrationDate = at
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
