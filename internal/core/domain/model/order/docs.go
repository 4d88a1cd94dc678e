// Package order contains the OrderHeader aggregate, its RequestLine entities
// and the order-level status lifecycle.
//
// An OrderHeader groups request lines that share a warehouse, a destination
// location, a company, an expected date and a shipping policy. The header is
// the single author of those shared attributes; PropagateToLines pushes the
// header's snapshot onto every line. Lifecycle transitions (Confirm, Cancel,
// BackToDraft, Complete) cascade from the header to the lines, never the
// other way around.
package order
