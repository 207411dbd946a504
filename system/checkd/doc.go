// Package checkd provides a document checking daemon.
//
// checkd answers JSON-RPC 2.0 requests that validate and convert
// decoded documents against a converter inferred from a sample
// document:
//
//   - reshape/check reports whether a document fits the sample's shape
//   - reshape/apply returns the converted document, optionally with a
//     merge patch from the input to the result
//   - reshape/ping reports the protocol version
//
// # Server
//
// Start the server with:
//
//	reshape serve -addr localhost:9223
//
// or over stdio with:
//
//	reshape serve -stdio
//
// # Related Packages
//
//   - [api] - Request/response types
//   - [server] - JSON-RPC server over stdio and TCP
package checkd
