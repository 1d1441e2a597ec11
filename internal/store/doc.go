// Package store defines the persistence interfaces for the taskboard
// application along with the error taxonomy shared by all store
// implementations. Concrete implementations live under
// internal/platform (currently PostgreSQL).
//
// Store interfaces are the only authorization boundary enforced at the
// persistence level: task deletion matches on both task ID and owner ID,
// so a non-owner delete is indistinguishable from deleting a task that
// does not exist.
package store
