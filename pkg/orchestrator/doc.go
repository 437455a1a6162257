// Package orchestrator wires the loader → parser → model builder pipeline
// that turns the form endpoint description into a form model, and dispatches
// page and list views to the renderer registry.
package orchestrator
