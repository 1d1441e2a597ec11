// Package service contains the application services that orchestrate the
// domain: the task lifecycle manager, the notification dispatcher, and
// user/role administration. Services check authorization through the
// authz guard before any store write, re-fetch state per operation rather
// than holding references, and hold no locks across store calls.
package service
