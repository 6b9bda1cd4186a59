// Package services implements the driving port interfaces.
// Services contain the list state engine and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies beyond
// request ID generation.
package services
