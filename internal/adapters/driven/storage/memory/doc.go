// Package memory provides in-memory implementations of the driven storage
// ports. Nothing here outlives the process.
package memory
