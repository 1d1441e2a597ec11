// Package mocks provides hand-written mock implementations of the store,
// auth, and push interfaces for use in unit tests. Each mock exposes Fn
// hooks for custom behavior, default return values, and call tracking so
// tests can verify interactions.
package mocks
