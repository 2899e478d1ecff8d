// Package parcel contains the Parcel aggregate: the billable, trackable
// package created when a request passes the validation gate and is approved.
//
// The aggregate owns the lifecycle state machine
// (Received -> InTransit -> Available -> Delivered), the internally issued
// tracking number, and the append-only tracking history. Every transition,
// forward or administrative, produces exactly one history entry; the handler
// persists the aggregate and its uncommitted entries in one transaction.
package parcel
