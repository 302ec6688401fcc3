// Package domain contains the core entities and value objects for linemark.
//
// This package has no dependencies on infrastructure concerns (file system,
// logging, CLI) and contains only the annotation rules.
//
// # Entities
//
//   - [Record]: one annotated line (identifier, text, capital count)
//   - [Revision]: which historical annotation behaviour to reproduce
//
// Records are immutable after construction.
package domain
