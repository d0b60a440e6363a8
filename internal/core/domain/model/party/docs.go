// Package party provides the reference entities surrounding a shipment:
// clients who send and receive parcels, employees who register and deliver
// them, and the offices and companies employees belong to.
//
// These entities carry no workflow of their own. They exist to be referenced
// by shipments (sender, receiver, registering employee) and by login
// identities, and are managed through plain create/read/update/delete
// operations.
package party
