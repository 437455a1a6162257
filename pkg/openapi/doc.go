// Package openapi exposes the public contracts for reading the form schema
// document. The contact form's labels, placeholders and descriptions live in an
// OpenAPI 3 description of the form endpoints; implementations live under
// internal/openapi to keep kin-openapi types away from consumers.
package openapi
