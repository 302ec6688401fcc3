// Package ports defines the interfaces that connect the annotation core
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [LineSource]: yields the lines of an input file
//   - [IDGenerator]: produces record identifiers
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters) implement them with the file system, uuid
// and zerolog.
package ports
