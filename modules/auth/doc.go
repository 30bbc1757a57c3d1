// Package auth implements password login against the platform store and
// issues the tenant-bound access tokens consumed by the request guard.
//
// The module deliberately has no tenant context of its own: login happens
// on the reserved /api/auth path, and the tenant binding comes from the
// user's account row, not from the request path.
package auth
