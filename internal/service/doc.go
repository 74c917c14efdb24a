// Package service implements the application's use cases on top of the
// store interfaces: registration and login orchestration, and task
// creation/listing/deletion with synchronous priority scoring. Services
// depend on interfaces only and carry no HTTP concerns.
package service
