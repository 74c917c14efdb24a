// Package logger provides structured logging functionality for the
// application, built on log/slog with a JSON handler. It also carries a
// request-scoped logger through context so handlers and stores can log with
// shared attributes like trace IDs.
package logger
