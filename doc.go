// Package contacts is the entry point to an in-memory contact manager bound to
// a single HTML form. The form is generated from the bundled OpenAPI
// description of its endpoint, the collection is seeded from the bundled seed
// document, and the vanilla renderer draws the page and list.
package contacts
