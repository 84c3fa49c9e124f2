// Package integration provides end-to-end tests for the HarvestLink server.
// Each test starts the full application from a configuration file and talks
// to it over HTTP the way a browser client would.
package integration
