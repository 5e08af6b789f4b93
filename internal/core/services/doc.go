// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Document editing is built from three pieces:
//
//   - DocumentStore: holds the current Resume and notifies subscribers
//   - Collection: pure add/update/remove on one record list
//   - Editors: bind a Collection to the store and an IDSequence
//
// No document operation returns an error. Operations on ids that are
// not present leave the store untouched.
package services
