// Package services contains the application's business logic, composed from
// the repositories and the crawling pipeline.
package services

// Services bundles every application service for dependency injection
type Services struct {
	Auth        *AuthService
	WordBook    *WordBookService
	Word        *WordService
	Class       *ClassService
	Acquisition *AcquisitionService
}
