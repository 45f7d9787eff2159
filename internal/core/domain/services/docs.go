// Package services provides domain services that implement business rules
// spanning more than one aggregate in the LogiPeek platform.
//
// The package includes:
//   - LicenseGate: The eligibility predicate a driver must satisfy to claim orders
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
