package models

import "errors"

// Common errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a record with the same external ID
	// is already present in the content store
	ErrAlreadyExists = errors.New("article already exists")

	// ErrSlugTaken is returned when a different external ID already owns
	// the derived slug
	ErrSlugTaken = errors.New("slug already taken by another article")

	// ErrIngestInProgress is returned when an ingestion run is triggered
	// while another run holds the ingest lock
	ErrIngestInProgress = errors.New("ingestion already in progress")

	// ErrUnauthorized is returned when the caller identity is not on the
	// admin allow-list
	ErrUnauthorized = errors.New("identity not authorized")
)
