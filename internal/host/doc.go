// Package host implements the Instance orchestrator: the object a host
// environment actually drives.
//
// An Instance composes one parsed service configuration, the factory
// resolved from the configuration's service identifier, and the lifecycle
// wrapper around the instantiated service. It builds the layered parameter
// chain for load calls — explicit overrides beat environment variables,
// which beat the static configuration file — and constructs a fresh
// per-call context for every load and process invocation.
//
// An Instance assumes the host serializes calls into it: at most one Load
// in flight, and Process calls never overlapping Load or each other. Hosts
// that fan out concurrent work must add their own mutual exclusion above
// this layer.
package host
