// Package app wires the application together: it owns the logger, loads
// the model and target descriptions through a config.Loader, and runs the
// compilation pipeline.
package app
