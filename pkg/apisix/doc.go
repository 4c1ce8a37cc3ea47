// Package apisix provides types, interfaces, and helpers for working with
// the Apache APISIX Admin and Control APIs.
//
// # Overview
//
// The apisix package defines the resource-kind enumeration and path builder,
// the response envelope types (Resource, ListResponse), the error taxonomy,
// and the interfaces for the two client facades (AdminClient, ControlClient)
// and their per-resource sub-clients. A concrete implementation is provided
// by the apisixclient package, which wires configuration, transport, and
// authentication. Most consumers should import apisixclient to construct a
// client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/s1nju/apisix-client/pkg/apisix"
//	  "github.com/s1nju/apisix-client/pkg/apisixclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  admin, err := apisixclient.NewAdmin(&apisix.Config{
//	    Endpoint: "http://127.0.0.1:9180/apisix/admin",
//	    APIKey:   "edd1c9f034335f136f87ad84b625c8f1",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  routes, err := admin.Routes().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = routes
//	}
//
// # Payloads
//
// Resource configurations are opaque Object values (string-keyed maps). The
// client serializes them verbatim and never injects defaults; the gateway
// owns all schema validation. PUT-style methods (CreateWithID, Update on
// consumers and ssl) fully replace the stored object, while PATCH-style
// methods (Update, UpdateWithPath) request a server-side partial merge.
//
// # Errors
//
// Every call either returns a decoded value or exactly one error from the
// taxonomy: TransportError, AuthenticationError, NotFoundError,
// ValidationError, ServerError, or InvalidResourceKindError (raised locally,
// before any network call). Helpers such as IsNotFound and IsValidation make
// it easy to branch on the common cases without inspecting status codes.
//
// # Concurrency
//
// Clients capture their configuration at construction and hold no mutable
// per-call state, so a single client instance may be shared freely across
// goroutines. The BatchExecutor builds on this to run many admin operations
// concurrently with bounded parallelism.
package apisix
