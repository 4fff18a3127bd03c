// Package http implements the HTTP transport layer of the blog API.
//
// It exposes route wiring, request handlers, and middleware. Each route is
// bound once, in [Handler.Init], to a static pipeline of stages (response
// cache, identity, authorization) declared with the pipeline package; every
// pipeline terminates in the error boundary, which turns unhandled errors
// and panics into a uniform 500 response. Cross-cutting concerns such as
// request tracing, access logging and request metrics wrap the router.
package http
