// Package component defines lifecycle-managed services.
//
// A REST connection is a long-lived resource: it is started once, probed for
// health, and released on shutdown. Registry starts components in
// registration order and stops them in reverse.
//
// # Interfaces
//
//   - Component: Start/Stop/Health lifecycle
//   - Describable: one-line startup summary
package component
