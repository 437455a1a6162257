package contact

import "github.com/goliatone/go-contacts/pkg/model"

// Form field names bound to record fields.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldAddress   = "address"
	FieldTelephone = "telephone"
	FieldEmail     = "email"
	FieldContacts  = "contacts"
)

// Layout declares the contact form: one control per record field plus the
// hidden id, each with an explicit kind.
var Layout = []model.FieldSpec{
	{Name: FieldID, Kind: model.FieldKindHidden},
	{Name: FieldName, Kind: model.FieldKindText},
	{Name: FieldAddress, Kind: model.FieldKindText},
	{Name: FieldTelephone, Kind: model.FieldKindTel},
	{Name: FieldEmail, Kind: model.FieldKindEmail},
	{Name: FieldContacts, Kind: model.FieldKindText},
}

// FormValues maps a record onto form values. Contacts stay a list; text
// controls join it for display.
func FormValues(r Record) model.Values {
	values := model.Values{}
	values.Set(FieldID, r.ID)
	values.Set(FieldName, r.Name)
	values.Set(FieldAddress, r.Address)
	values.Set(FieldTelephone, r.Telephone)
	values.Set(FieldEmail, r.Email)
	values.Set(FieldContacts, cloneList(r.Contacts)...)
	return values
}

// FieldsFromValues builds a field-set from form values. Missing names become
// empty fields.
func FieldsFromValues(values model.Values) Fields {
	return Fields{
		Name:      values.Get(FieldName),
		Address:   values.Get(FieldAddress),
		Telephone: values.Get(FieldTelephone),
		Email:     values.Get(FieldEmail),
		Contacts:  ContactList(values),
	}
}

// PatchFromValues builds a patch holding only the names present in values.
func PatchFromValues(values model.Values) Patch {
	var patch Patch
	if values.Has(FieldName) {
		patch.Name = Set(values.Get(FieldName))
	}
	if values.Has(FieldAddress) {
		patch.Address = Set(values.Get(FieldAddress))
	}
	if values.Has(FieldTelephone) {
		patch.Telephone = Set(values.Get(FieldTelephone))
	}
	if values.Has(FieldEmail) {
		patch.Email = Set(values.Get(FieldEmail))
	}
	if values.Has(FieldContacts) {
		patch.Contacts = Set(ContactList(values))
	}
	return patch
}

// ContactList splits every contacts value on "," and flattens the pieces in
// order, so a single delimited string and repeated values parse alike.
func ContactList(values model.Values) []string {
	out := []string{}
	for _, raw := range values[FieldContacts] {
		out = append(out, model.SplitList(raw)...)
	}
	return out
}
