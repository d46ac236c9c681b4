// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation to protect endpoints.
//   - rayid: generates a unique request ID (RayID) for every request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally by the start command.
package middleware
