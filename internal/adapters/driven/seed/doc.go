// Package seed provides the driven.SeedSource implementations that supply
// the document the store starts with.
//
// Sources:
//   - Builtin: the document compiled into the binary
//   - FileSource: a JSON file validated against an embedded JSON Schema,
//     optionally watched for changes
package seed
