package domain

import "errors"

// Typed service errors. The messages are part of the observable API
// contract: the boundary layer passes them through verbatim in the
// response body's "message" field.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnauthenticated    = errors.New("You must be authenticated to access this content")

	ErrSelfRoleUpdate  = errors.New("You cannot update your own roles.")
	ErrAdminRoleUpdate = errors.New("You don't have permission to update the roles of a admin.")
	ErrAdminRoleGrant  = errors.New("You don't have permission to give admin to others users.")

	ErrProductNotFound = errors.New("Product not found")
	ErrUserNotFound    = errors.New("User not found")

	ErrEmailTaken       = errors.New("The email has already been taken.")
	ErrProductNameTaken = errors.New("The name is already been used.")

	ErrLoginThrottled = errors.New("Too many login attempts. Please try again later.")
)
