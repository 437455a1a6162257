package controller

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/formsync"
)

// Mode says whether a submit creates a record or updates the loaded one.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Label is the text shown on every mode label node.
func (m Mode) Label() string {
	if m == ModeEdit {
		return "Update"
	}
	return "Add"
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger attaches a logger for mode transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// DeleteResult reports what a delete did to the list.
type DeleteResult struct {
	// Removed is false when the id was not in the collection.
	Removed bool
	// Remaining holds the records left after the delete.
	Remaining []contact.Record
	// NeedsFullRender is set once the list is empty, so the host re-renders
	// it to show the placeholder instead of dropping one entry.
	NeedsFullRender bool
}

// Controller binds one form to one collection. It is not safe for concurrent
// use; hosts run each event to completion before the next.
type Controller struct {
	contacts *contact.Collection
	form     *formsync.Form
	mode     Mode
	logger   *zap.Logger
}

// New wires a controller to its collection and form. The form starts cleared
// in add mode.
func New(contacts *contact.Collection, form *formsync.Form, opts ...Option) (*Controller, error) {
	if contacts == nil {
		return nil, fmt.Errorf("controller: collection is required: %w", contact.ErrInvalidArgument)
	}
	if form == nil {
		return nil, fmt.Errorf("controller: form is required: %w", contact.ErrInvalidArgument)
	}
	if _, ok := form.Control(contact.FieldID); !ok {
		return nil, fmt.Errorf("controller: form has no %q control: %w", contact.FieldID, contact.ErrInvalidArgument)
	}
	c := &Controller{
		contacts: contacts,
		form:     form,
		mode:     ModeAdd,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.form.Clear()
	return c, nil
}

// Mode reports the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Label reports the label for the current mode.
func (c *Controller) Label() string {
	return c.mode.Label()
}

// Form exposes the bound form.
func (c *Controller) Form() *formsync.Form {
	return c.form
}

// Records returns a copy of the collection in order.
func (c *Controller) Records() []contact.Record {
	return c.contacts.All()
}

// EditingID returns the id loaded into the form, or "" in add mode.
func (c *Controller) EditingID() string {
	return c.form.Value(contact.FieldID)
}

// Edit loads the record into the form, hidden id included, and switches to
// edit mode. On error the form and mode are left as they were.
func (c *Controller) Edit(id string) (contact.Record, error) {
	record, ok, err := c.contacts.Get(id)
	if err != nil {
		return contact.Record{}, fmt.Errorf("controller: edit: %w", err)
	}
	if !ok {
		return contact.Record{}, fmt.Errorf("controller: edit %s: %w", id, contact.ErrNotFound)
	}
	c.form.Clear()
	c.form.Populate(contact.FormValues(record))
	c.setMode(ModeEdit)
	return record, nil
}

// Submit stores the form: an update when the hidden id is set, an add
// otherwise. On success the form is cleared and the mode returns to add. On
// error the form keeps what the user typed.
func (c *Controller) Submit() (contact.Record, error) {
	values := c.form.Extract()
	id := values.Get(contact.FieldID)

	var (
		record contact.Record
		err    error
	)
	if id != "" {
		record, err = c.contacts.Update(id, contact.PatchFromValues(values))
	} else {
		fields := contact.FieldsFromValues(values)
		record, err = c.contacts.Add(&fields)
	}
	if err != nil {
		return contact.Record{}, fmt.Errorf("controller: submit: %w", err)
	}

	c.form.Clear()
	c.setMode(ModeAdd)
	return record, nil
}

// Delete removes the record. Deleting the record currently loaded into the
// form also cancels the edit, since there is nothing left to update.
func (c *Controller) Delete(id string) (DeleteResult, error) {
	remaining, removed, err := c.contacts.Remove(id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("controller: delete: %w", err)
	}
	if !removed {
		return DeleteResult{Remaining: c.contacts.All()}, nil
	}
	if c.mode == ModeEdit && c.EditingID() == id {
		c.Cancel()
	}
	return DeleteResult{
		Removed:         true,
		Remaining:       remaining,
		NeedsFullRender: len(remaining) == 0,
	}, nil
}

// Cancel drops any loaded record and returns to add mode.
func (c *Controller) Cancel() {
	c.form.Clear()
	c.setMode(ModeAdd)
}

func (c *Controller) setMode(mode Mode) {
	if c.mode == mode {
		return
	}
	c.logger.Debug("form mode changed",
		zap.String("from", string(c.mode)),
		zap.String("to", string(mode)),
	)
	c.mode = mode
}
