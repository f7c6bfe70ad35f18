// Package commands defines the urchat CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - register       Create a profile, keys and publish your public key
//   - fingerprint    Print the identity fingerprint
//   - rotate         Retire the current keys and publish fresh ones
//   - send           Encrypt and send a message
//   - recv           Fetch and decrypt queued messages (optionally polling)
//   - history        Show the local encrypted message log
//   - users          List users known to the directory
//   - ping           Check relay/directory connectivity
//
// # Implementation
//
// The root command builds a dependency graph (stores, services, relay and
// directory clients) from flags and the environment before any subcommand
// runs, so handlers share one app context.
package commands
