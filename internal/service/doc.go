// Package service defines the contract between the host and an externally
// supplied service implementation.
//
// A service implements any subset of the optional capability interfaces
// Loader, Processor, and Disposer. Which capabilities an instance carries
// is decided once, when the lifecycle wrapper probes it, never by dynamic
// lookup on each call. Every operation is a blocking, context-aware call:
// that single primitive replaces the sync-versus-async split some hosting
// systems expose, so callers have exactly one code path and an operation
// has always run to completion when the call returns.
package service
