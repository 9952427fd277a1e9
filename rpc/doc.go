// Package rpc defines the transport boundary between the directory client
// and a remote identity directory server.
//
// A Transport exposes the six directory operations as typed request/response
// calls. The package ships a JSON-over-HTTP implementation, a factory
// registry for alternative wire protocols, and decorators that compose
// resilience and observability around any Transport. Wire-shape quirks such
// as the one-or-many encoding of group collections are normalized here so
// the core client never sees them.
package rpc
