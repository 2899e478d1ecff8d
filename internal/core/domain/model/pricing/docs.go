// Package pricing contains the aggregates and value objects that determine
// what a package costs: the time-versioned FeeSchedule, the SpecialItemRule
// fixed-fee overrides, and the computed Fee triple.
//
// Pricing state is always passed explicitly into the fee calculator and the
// special-item matcher (see the services package); nothing in this package
// reads ambient or global configuration.
package pricing
