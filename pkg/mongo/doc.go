// Package mongo connects the MongoDB cluster that hosts one logical database
// per tenant. Only the client bootstrap lives here; mapping a tenant to its
// database is done by pkg/storage.
package mongo
