// Package request contains the PackageRequest aggregate: a customer's
// unvalidated shipment intent awaiting staff review.
//
// A request is never billable and carries no fee fields. Staff supply the
// authoritative weight and category through the embedded Review (the
// validation gate), and must confirm each independently before the request
// can be approved and converted into a billable, trackable parcel. Once
// approved or rejected, a request is immutable.
package request
