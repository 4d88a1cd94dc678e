// Package ports defines the contracts between the application core and its
// collaborators: persistence, the warehouse and product read models, the
// sequence and grouping-key generators, the fulfillment subsystem, the audit
// log and the acting user's session.
package ports
