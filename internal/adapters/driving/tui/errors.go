package tui

import "errors"

// ErrMissingDocumentStore is returned when the document store is not provided.
var ErrMissingDocumentStore = errors.New("tui: document store is required")

// ErrMissingAccessGate is returned when the access gate is not provided.
var ErrMissingAccessGate = errors.New("tui: access gate is required")

// ErrMissingPreviewRenderer is returned when the preview renderer is not provided.
var ErrMissingPreviewRenderer = errors.New("tui: preview renderer is required")

// ErrMissingSaveService is returned when the save service is not provided.
var ErrMissingSaveService = errors.New("tui: save service is required")

// ErrMissingEditor is returned when any section editor is not provided.
var ErrMissingEditor = errors.New("tui: an editor for every section is required")
