// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The report pipeline is collect assessment -> score -> resolve rows ->
// render. Scoring and row resolution never touch a renderer, so the
// on-screen summary survives any export failure.
package services
