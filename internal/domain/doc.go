// Package domain contains the core business entities of the taskboard
// application: users, tasks, and notifications, together with their
// validation rules and the sentinel errors shared across layers.
//
// The domain layer has no dependencies on storage, transport, or any
// external provider; entities here are plain data with behavior.
package domain
