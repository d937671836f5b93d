// Package controllers contains the HTTP handlers. Controllers bind and
// validate requests, delegate to services and translate results into the
// standard response envelope.
package controllers

// Controllers bundles every HTTP controller for route registration
type Controllers struct {
	Auth     *AuthController
	WordBook *WordBookController
	Word     *WordController
	Class    *ClassController
}
