package ports

import "github.com/bft-labs/linemark/pkg/log"

// Logger is the structured logging port used by the application layer.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors, re-exported so the application layer only imports ports.
var (
	String   = log.String
	Int      = log.Int
	Duration = log.Duration
	Err      = log.Err
)
