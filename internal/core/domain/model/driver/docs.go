// Package driver provides domain entities and business logic for driver
// profiles in the LogiPeek platform. It implements the Profile aggregate root
// covering availability, license standing, and aggregate trip statistics.
//
// The package includes:
//   - Profile: The aggregate root that manages availability, license, and trip stats
//   - Availability: The driver's working state (Offline, Online, Busy)
//
// Key business rules:
//   - Profiles must have a valid unique identifier
//   - The lifecycle engine drives availability: Busy at claim, Online at
//     completion or displacement
//   - Trip statistics only move forward; ratings fold into a running average
//   - License standing is tri-state: no image, pending review, reviewed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver
