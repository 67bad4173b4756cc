// Package careersdk provides a typed client for the PathFinder career
// guidance API, plus the request/response/error types the server itself
// uses. Keeping both sides on one set of types means the wire contract is
// defined exactly once.
//
// Unauthenticated calls (Signup, Login) hang off Client; Login returns a
// Session that attaches the bearer token to the protected endpoints
// (SaveDetails, Recommend, LiveSearch).
package careersdk
