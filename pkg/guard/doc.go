// Package guard authorizes tenant-scoped requests.
//
// For every request the guard verifies the bearer token, resolves the
// tenant addressed by the path, and compares the two tenant bindings in
// canonical slug form. Only when they match does it obtain the tenant's
// storage handle and build the authorized request context handed to
// business handlers. The pipeline is fail-closed: a missing claim, an
// unparsable slug, or a registry failure all deny access, never allow.
//
//	g := guard.New(tokenSvc, resolver, router)
//	r.Route("/api/{slug}", func(r chi.Router) {
//	    r.Use(guard.Middleware(g, nil))
//	    ...
//	})
package guard
