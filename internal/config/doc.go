// Package config defines the application's configuration surface and loads
// it once at startup. Configuration is immutable for the process lifetime
// and injected into the components that need it; nothing reads ambient
// global state after Load returns.
package config
