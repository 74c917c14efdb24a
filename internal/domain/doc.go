// Package domain defines the core business entities of the application:
// users and their prioritized tasks. Entities validate themselves and
// carry no persistence or transport concerns.
package domain
