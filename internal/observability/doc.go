// Package observability provides structured logging for the
// project-librarian tooling.
//
// This package implements:
//   - zap-based loggers built from the configured LOG_LEVEL
//   - Level name parsing for the names the configuration surface uses
//     (DEBUG, INFO, WARNING, ERROR, CRITICAL)
//   - A per-process run id attached to every line
package observability
