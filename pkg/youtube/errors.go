package youtube

import "errors"

var (
	// ErrDone signals the end of a cursor's result sequence.
	ErrDone = errors.New("no more items")

	// ErrNotFound is returned by single-resource lookups that matched nothing.
	ErrNotFound = errors.New("resource not found")

	// construction-time failures
	ErrUnknownEndpoint   = errors.New("unknown api endpoint")
	ErrMissingCredential = errors.New("api key not provided")

	// per-item / per-attribute failures
	ErrUnsupportedResourceKind = errors.New("unsupported resource kind")
	ErrUnknownAttribute        = errors.New("attribute not defined for resource kind")
	ErrAttributeUnavailable    = errors.New("attribute has no value on the service")

	// ErrMalformedResponse means a response was missing keys the API
	// contract requires, as opposed to optional per-item fields.
	ErrMalformedResponse = errors.New("malformed api response")
)
