// Package model defines the typed form model consumed by renderers and the
// form synchronizer. Builders reside in internal/model but return the types
// defined here. A form is declared by a layout of FieldSpec entries, each
// naming a control and its FieldKind; the OpenAPI request body only
// contributes presentation metadata (labels, placeholders, descriptions).
// Values is the flat name to values mapping exchanged between forms and
// records.
package model
