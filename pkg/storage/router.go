package storage

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nordcrm/nordcrm/pkg/tenant"
)

// ErrNoStorageHandle is returned when a tenant record carries no
// logical database name. It indicates a provisioning defect; routing
// such a tenant anywhere would be unsafe.
var ErrNoStorageHandle = errors.New("storage: tenant has no storage handle")

// Router maps validated tenant records to their isolated logical
// databases. Each tenant's data lives in its own Mongo database named
// by the record's storage handle, so a handle obtained for one tenant
// can never address another tenant's collections. Construct one Router
// at startup and inject it; the underlying client's connection pool is
// managed by the driver.
type Router struct {
	client *mongo.Client
}

// NewRouter creates a storage router over a connected Mongo client.
func NewRouter(client *mongo.Client) *Router {
	return &Router{client: client}
}

// HandleFor returns the database handle for a tenant. It is a pure
// mapping: tenant status is already guaranteed upstream by the
// resolver, and no validation is repeated here.
func (r *Router) HandleFor(t *tenant.Tenant) (*mongo.Database, error) {
	if t == nil || t.StorageHandle == "" {
		return nil, ErrNoStorageHandle
	}
	return r.client.Database(t.StorageHandle), nil
}
