// Package handler is the first layer after the router.
//
// It binds requests, validates them through the validation
// package and calls the service layer. Card endpoints are typed
// functions wrapped by Handle; system endpoints (root, status,
// docs) are plain Echo handlers.
package handler
