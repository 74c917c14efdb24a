// Package store defines the persistence interfaces and sentinel errors used
// by the application core. Concrete implementations live under
// internal/platform; services depend only on these interfaces.
package store
