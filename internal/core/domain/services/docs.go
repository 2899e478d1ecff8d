// Package services contains stateless domain services that operate across
// aggregates: the fee calculator and the special-item matcher.
//
// Both services are pure. Pricing state (the active fee schedule and the
// active rule set) is always passed in as parameters, never read from shared
// or global state, so the services are safe and cheap to call for what-if
// previews from the UI fee calculator.
package services
