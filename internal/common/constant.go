// Package common contains shared constants and small helpers used across
// badgekeeper components.
package common

// AuthorizationHeaderName carries the raw credential on authorized API calls.
// The value is the bare token, without a "Bearer" scheme prefix.
const AuthorizationHeaderName = "Authorization"

// ContentTypeJSON is sent with every API request body.
const ContentTypeJSON = "application/json"
