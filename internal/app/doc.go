// Package app contains the core application logic of the CLI host. It
// defines the App struct, its configuration, and the single
// load → process → dispose cycle the host drives, decoupled from any
// specific entrypoint.
package app
