// Package account models login identities and the role-based authorization
// rules built on them.
//
// A User binds a username to exactly one of a client or an employee and
// carries the Role used for gating operations. A Caller is the resolved
// identity of an incoming request: it is passed explicitly to every gated
// operation as a capability object instead of living in ambient session
// state. Password hashing and credential verification are external concerns;
// this package only stores the resulting hash.
package account
