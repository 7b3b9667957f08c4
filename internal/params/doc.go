// Package params implements the layered parameter resolution used to feed
// configuration into hosted services.
//
// A Source answers lookups by parameter name. Four implementations exist:
// a literal map of host overrides, the process environment (behind a name
// prefix), the parameters section of a service configuration file, and a
// Coalescing source that queries an ordered list of members and takes the
// first hit. Hosts compose them so that an explicit override always wins
// over the environment, which always wins over the static configuration.
//
// Every lookup validates the parameter name first. A malformed name fails
// loudly instead of silently resolving to nothing in an environment or
// config lookup it was never going to match.
package params
