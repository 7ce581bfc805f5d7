// Package openmensa provides an HTTP client for the OpenMensa v2 API.
//
// # Endpoints
//
// The client reads two endpoints:
//
//   - GET /canteens/{id}/days: upcoming days, each with a closed flag
//   - GET /canteens/{id}/days/{YYYY-MM-DD}/meals: the menu of one day
//
// Both return JSON arrays decoded into Day and Meal.
//
// # Request Handling
//
// All requests use the caller's context, send Accept: application/json and
// User-Agent: mensa/0.1, and time out after 10 seconds unless a custom
// http.Client is supplied with WithHTTPClient.
//
// # Errors
//
//   - "execute request: ...": network failures
//   - ErrNotFound: the API answered 404 (unknown canteen, no menu for that day)
//   - *StatusError: any other 4xx/5xx answer
//   - "decode response: ...": malformed JSON
//
// # Offline Fallback
//
// With WithCache, every successful body is stored in the response cache keyed
// by request path. When a later request fails with a network error or a 5xx
// status, the stored body is decoded and returned instead, and a warning is
// logged. 404 and other client errors are always returned as is.
//
// # Thread Safety
//
// The Client is safe for concurrent use.
package openmensa
