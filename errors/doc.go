/*
Package errors provides the error types shared by the admin panel data-access packages.

Sentinel errors:

	ErrNotFound      // table or row not found
	ErrInvalidInput  // validation failure (bad site, malformed table map, bad config)
	ErrUnknownTable  // no table mapped for a site/entity pair
	ErrBackend       // count or range query failed
	ErrCanceled      // caller's context ended mid-read

Typed errors implement Is so they match their sentinel through wrapping:

	err := errors.NewUnknownTableError("ngo", "widgets")
	if errors.IsUnknownTable(err) {
	    // ...
	}

Info converts any error into the storagemodels.ErrorInfo shape returned inside a
FetchResult, picking the backend's own code when a BackendError carries one.
*/
package errors
