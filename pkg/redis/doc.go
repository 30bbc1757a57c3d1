// Package redis connects the shared Redis instance used as the distributed
// tenant cache backend. It wraps go-redis with retrying Connect, env-driven
// Config, and a health probe; the cache semantics themselves live in
// pkg/tenant.
package redis
