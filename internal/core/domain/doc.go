// Package domain defines the core business entities for resumedesk.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Resume: The editable document (profile plus five collections)
//   - Skill, Experience, Education, Project, Certification: Collection records
//   - ProfileField, SkillField, ...: Typed field names with copy-on-write setters
//   - RenderModel: The projection drawn by the live preview
//   - User, Role, Session: The result of passing the access gate
//
// # Value Semantics
//
// A Resume is never modified in place. Every change produces a new value
// whose untouched collections share storage with the old one, so a
// previously obtained Resume always stays valid.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
