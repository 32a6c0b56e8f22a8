// Package client talks to the badge API over HTTP.
//
// # Overview
//
// Client is the transport-agnostic contract used by the pages: Signup,
// Login, CreateBadge and GetBadge. HTTPClient implements it on top of
// resty. Every call issues exactly one request; redirects are never followed.
//
// # Wire format
//
// Bodies are JSON. Signup and login answer with the credential encoded as a
// JSON string, which is returned with its quotes removed. Badge creation
// sends the credential as the raw value of the Authorization header, with no
// scheme prefix.
//
// # Error Handling
//
// Only status 200 counts as success. Other statuses yield a *StatusError
// (errors.Is(err, ErrUnexpectedStatus)); transport failures yield
// ErrUnavailable; unreadable success bodies yield ErrDecodeResponse.
package client
