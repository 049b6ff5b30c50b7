// Package model holds the entities persisted by the repositories and the
// response shapes shared by the handlers.
package model

// MessageResponse is the body returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse confirms an insert and reports the generated id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
