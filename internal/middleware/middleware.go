// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as CORS, request ids, request logging, tracing, error
// translation and panic recovery
package middleware
