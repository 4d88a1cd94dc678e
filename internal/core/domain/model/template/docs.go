// Package template contains the request template catalog: named sets of
// (product, unit, quantity) defaults used to seed the lines of a new order in
// a single expansion.
package template
