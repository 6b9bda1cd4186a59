// Package memory provides in-memory implementations of the driven stores.
// They back the app when persistence is disabled and serve as fakes in tests.
package memory
