// Package services contains domain services implementing business logic that
// spans multiple aggregates or needs read access to reference data.
//
// HeaderSynchronizer keeps an order's request lines aligned with the header
// and runs the corrective cross-field reactions between location, warehouse
// and company.
package services
