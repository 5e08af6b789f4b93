// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//   - CredentialStore: Username to password hash lookup
//   - SeedSource: The initial document
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SaveHook: Receives the document on save. Without it, save only logs.
//   - SeedWatcher: Live reload of the seed file. Only file sources implement it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
