// Command relay is the store-and-forward daemon fronting the public-key
// directory and message log for clients without direct redis access. It
// serves the JSON API consumed by the HTTP client in internal/relay.
package main
