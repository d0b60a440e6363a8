// Package shipment provides domain entities and business logic for shipment
// management in the logistics system. It implements the Shipment aggregate
// root with lifecycle management, pricing, and the opt-in validation policy.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, properties, and lifecycle
//   - Status: The lifecycle vocabulary (Shipped, InTransit, Delivered)
//   - ValidationPolicy: Opt-in consistency checks not enforced by the creation paths
//
// Key business rules:
//   - Shipments must have valid sender, receiver, and registering employee references
//   - Creation always forces the Shipped status and stamps the registration date
//   - Deliver stamps the Delivered status and the delivery date; it is not idempotent
//   - Overwrite replaces mutable fields without transition validation (the unsafe update path)
//   - Price is BasePrice plus weight times the office or address factor
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
