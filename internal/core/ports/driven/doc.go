// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ContentCatalog: Static text keyed by dimension and level
//   - RendererRegistry: Resolves document backends by name
//   - Renderer: Produces document bytes from a composed report
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AssetFetcher: Loads branding images. Without it, documents carry no marks.
//   - SessionStore: Holds in-progress assessments. Only the interactive
//     surfaces (HTTP, MCP) need it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or renderer package
package driven
