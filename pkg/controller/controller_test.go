package controller_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/controller"
	"github.com/goliatone/go-contacts/pkg/formsync"
	"github.com/goliatone/go-contacts/pkg/model"
	"github.com/goliatone/go-contacts/pkg/testsupport"
)

func newController(t *testing.T, seed []contact.Fields, opts ...controller.Option) (*controller.Controller, *contact.Collection) {
	t.Helper()
	contacts := contact.New(seed, contact.WithIDGenerator(testsupport.SequentialIDs()))
	form := formsync.New(testsupport.ContactFormModel())
	c, err := controller.New(contacts, form, opts...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c, contacts
}

func submission(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		values.Add(pairs[i], pairs[i+1])
	}
	return values
}

func TestNewRejectsMissingDependencies(t *testing.T) {
	form := formsync.New(testsupport.ContactFormModel())
	if _, err := controller.New(nil, form); !errors.Is(err, contact.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil collection, got %v", err)
	}
	if _, err := controller.New(contact.New(nil), nil); !errors.Is(err, contact.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil form, got %v", err)
	}

	noID := testsupport.ContactFormModel()
	noID.Fields = noID.Fields[1:]
	if _, err := controller.New(contact.New(nil), formsync.New(noID)); err == nil {
		t.Fatalf("expected error for a form without the hidden id")
	}
}

func TestStartsInAddMode(t *testing.T) {
	c, _ := newController(t, nil)
	if c.Mode() != controller.ModeAdd || c.Label() != "Add" {
		t.Fatalf("mode = %s label = %s", c.Mode(), c.Label())
	}
	if c.EditingID() != "" {
		t.Fatalf("editing id = %q", c.EditingID())
	}
}

func TestSubmitAddsAndClears(t *testing.T) {
	c, contacts := newController(t, nil)

	c.Form().Submit(submission(
		contact.FieldName, "Jon Smith",
		contact.FieldEmail, "jon@example.com",
		contact.FieldContacts, " x ,y,, z",
	))
	record, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if diff := cmp.Diff([]string{"x", "y", "z"}, record.Contacts); diff != "" {
		t.Fatalf("contacts mismatch (-want +got):\n%s", diff)
	}
	if contacts.Len() != 1 || record.ID == "" {
		t.Fatalf("record not stored: %+v", record)
	}
	if got := c.Form().Value(contact.FieldName); got != "" {
		t.Fatalf("form not cleared, name = %q", got)
	}
	if c.Mode() != controller.ModeAdd {
		t.Fatalf("mode = %s", c.Mode())
	}
}

func TestEditPopulatesFormAndSwitchesMode(t *testing.T) {
	c, _ := newController(t, testsupport.SeedFields())

	record, err := c.Edit("id-2")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if record.Name != "Sprint.com" {
		t.Fatalf("edited record = %+v", record)
	}
	if c.Mode() != controller.ModeEdit || c.Label() != "Update" {
		t.Fatalf("mode = %s label = %s", c.Mode(), c.Label())
	}

	want := map[string]string{
		contact.FieldID:        "id-2",
		contact.FieldName:      "Sprint.com",
		contact.FieldAddress:   "777 Manchester Road Leeds",
		contact.FieldTelephone: "04443666777",
		contact.FieldEmail:     "alice@sprint.com",
		contact.FieldContacts:  "Virginie Charter",
	}
	got := map[string]string{}
	for name := range want {
		got[name] = c.Form().Value(name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("populated form mismatch (-want +got):\n%s", diff)
	}
}

func TestEditErrorsLeaveStateAlone(t *testing.T) {
	c, _ := newController(t, testsupport.SeedFields())
	c.Form().Submit(submission(contact.FieldName, "draft"))

	if _, err := c.Edit("missing"); !errors.Is(err, contact.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.Edit(""); !errors.Is(err, contact.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if c.Mode() != controller.ModeAdd || c.Form().Value(contact.FieldName) != "draft" {
		t.Fatalf("failed edit changed state: mode=%s name=%q", c.Mode(), c.Form().Value(contact.FieldName))
	}
}

func TestSubmitInEditModeUpdatesInPlace(t *testing.T) {
	c, contacts := newController(t, testsupport.SeedFields())
	before := contacts.All()

	if _, err := c.Edit("id-1"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	values := url.Values{}
	for _, control := range c.Form().Controls() {
		values.Set(control.Name, control.Value)
	}
	values.Set(contact.FieldEmail, "sales@acer.com")
	values.Set(contact.FieldContacts, "Jon Smith, Ann Lee")
	c.Form().Submit(values)

	updated, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := before[0]
	want.Email = "sales@acer.com"
	want.Contacts = []string{"Jon Smith", "Ann Lee"}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("updated record mismatch (-want +got):\n%s", diff)
	}
	after := contacts.All()
	if len(after) != len(before) || after[0].ID != "id-1" {
		t.Fatalf("update changed size or position: %+v", after)
	}
	if c.Mode() != controller.ModeAdd || c.EditingID() != "" {
		t.Fatalf("expected add mode after update, mode=%s id=%q", c.Mode(), c.EditingID())
	}
}

func TestSubmitUpdateOfVanishedRecordKeepsForm(t *testing.T) {
	c, contacts := newController(t, testsupport.SeedFields())
	if _, err := c.Edit("id-1"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	// Removed behind the controller's back.
	if _, _, err := contacts.Remove("id-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := c.Submit(); !errors.Is(err, contact.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if c.Mode() != controller.ModeEdit || c.EditingID() != "id-1" {
		t.Fatalf("failed submit changed state: mode=%s id=%q", c.Mode(), c.EditingID())
	}
}

func TestCancelReturnsToAddMode(t *testing.T) {
	c, contacts := newController(t, testsupport.SeedFields())
	if _, err := c.Edit("id-3"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	c.Cancel()

	if c.Mode() != controller.ModeAdd || c.EditingID() != "" || c.Form().Value(contact.FieldName) != "" {
		t.Fatalf("cancel left state behind: mode=%s", c.Mode())
	}
	if contacts.Len() != 3 {
		t.Fatalf("cancel touched the collection")
	}
}

func TestDeleteReportsFullRenderWhenEmpty(t *testing.T) {
	c, _ := newController(t, []contact.Fields{{Name: "A"}, {Name: "B"}})

	result, err := c.Delete("id-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !result.Removed || result.NeedsFullRender || len(result.Remaining) != 1 {
		t.Fatalf("first delete result = %+v", result)
	}

	result, err = c.Delete("id-2")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !result.Removed || !result.NeedsFullRender || len(result.Remaining) != 0 {
		t.Fatalf("last delete result = %+v", result)
	}
}

func TestDeleteMissIsNotAnError(t *testing.T) {
	c, _ := newController(t, []contact.Fields{{Name: "A"}})

	result, err := c.Delete("ghost")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if result.Removed || result.NeedsFullRender || len(result.Remaining) != 1 {
		t.Fatalf("miss result = %+v", result)
	}
	if _, err := c.Delete(""); !errors.Is(err, contact.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDeletingTheEditedRecordCancelsTheEdit(t *testing.T) {
	c, _ := newController(t, testsupport.SeedFields())
	if _, err := c.Edit("id-2"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if _, err := c.Delete("id-1"); err != nil {
		t.Fatalf("delete other: %v", err)
	}
	if c.Mode() != controller.ModeEdit {
		t.Fatalf("deleting another record left edit mode")
	}

	if _, err := c.Delete("id-2"); err != nil {
		t.Fatalf("delete edited: %v", err)
	}
	if c.Mode() != controller.ModeAdd || c.EditingID() != "" {
		t.Fatalf("expected edit to be cancelled, mode=%s id=%q", c.Mode(), c.EditingID())
	}
}

func TestContactsRoundTripThroughForm(t *testing.T) {
	c, _ := newController(t, nil)

	values := model.Values{}
	values.Set(contact.FieldContacts, "x", "y")
	c.Form().Populate(values)
	if got := c.Form().Value(contact.FieldContacts); got != "x, y" {
		t.Fatalf("displayed contacts = %q", got)
	}
	if diff := cmp.Diff([]string{"x", "y"}, contact.ContactList(c.Form().Extract())); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestModeTransitionsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, _ := newController(t, testsupport.SeedFields(), controller.WithLogger(zap.New(core)))

	if _, err := c.Edit("id-1"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	c.Cancel()

	entries := logs.FilterMessage("form mode changed").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["to"]; got != "edit" {
		t.Fatalf("first transition to = %v", got)
	}
}
