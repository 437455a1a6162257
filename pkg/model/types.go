package model

import internalmodel "github.com/goliatone/go-contacts/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindText           = internalmodel.FieldKindText
	FieldKindEmail          = internalmodel.FieldKindEmail
	FieldKindTel            = internalmodel.FieldKindTel
	FieldKindTextArea       = internalmodel.FieldKindTextArea
	FieldKindHidden         = internalmodel.FieldKindHidden
	FieldKindSelectMultiple = internalmodel.FieldKindSelectMultiple
	FieldKindCheckbox       = internalmodel.FieldKindCheckbox
)

type Option = internalmodel.Option
type FieldSpec = internalmodel.FieldSpec
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
type Values = internalmodel.Values

// ListSeparator joins list values for display in text-like controls.
const ListSeparator = internalmodel.ListSeparator

// SplitList splits a delimited list on "," and trims every piece, dropping
// empty ones.
func SplitList(raw string) []string {
	return internalmodel.SplitList(raw)
}

// JoinList renders a list for a text-like control.
func JoinList(values []string) string {
	return internalmodel.JoinList(values)
}
