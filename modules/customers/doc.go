// Package customers is the tenant-scoped CRM contact module. Every
// operation runs against the database the request guard resolved for the
// addressed tenant, so a handler physically cannot read another tenant's
// rows.
package customers
