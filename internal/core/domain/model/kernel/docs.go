// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks that aggregates are composed of:
//   - UUID: validated entity identifiers
//   - Weight: positive package weight in pounds
//   - Money: currency amounts with exact decimal arithmetic
//   - Location: named physical locations along the forwarding route
//
// All kernel types are immutable value objects constructed through factory
// functions that enforce their invariants. The zero value of each type is
// invalid and rejected by Validate.
package kernel
