// Package driving defines the interfaces the TUI, the CLI and the MCP server
// call into: the document store, the section editors, the preview renderer,
// the exporter, the access gate, the save service and settings.
//
// Every editor reads the store, computes the next document and hands it
// back through DocumentStore.Replace. Implementations live in
// internal/core/services.
package driving
