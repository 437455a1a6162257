package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/controller"
	"github.com/goliatone/go-contacts/pkg/model"
	"github.com/goliatone/go-contacts/pkg/render"
)

// Menu entries, in display order.
const (
	ActionAdd    = "Add contact"
	ActionEdit   = "Edit contact"
	ActionDelete = "Delete contact"
	ActionList   = "List contacts"
	ActionQuit   = "Quit"
)

var menu = []string{ActionAdd, ActionEdit, ActionDelete, ActionList, ActionQuit}

// Session drives a controller from the terminal: a menu loop whose actions map
// onto the same submit, edit and delete events the HTML page raises.
type Session struct {
	controller    *controller.Controller
	driver        PromptDriver
	out           io.Writer
	theme         Theme
	list          *ListRenderer
	logger        *zap.Logger
	renderOptions render.RenderOptions
}

// NewSession builds a session around ctrl. Without WithPromptDriver it prompts
// through survey on the process terminal.
func NewSession(ctrl *controller.Controller, options ...Option) (*Session, error) {
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		controller: ctrl,
		out:        os.Stdout,
		theme:      DefaultTheme(),
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	s.list = NewListRenderer(s.theme)
	return s, nil
}

// Run shows the menu until the user quits. Ctrl+C at any prompt ends the
// session without an error; a cancelled context ends it with the context's
// error. Failed actions are reported and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	if s.driver == nil {
		return ErrNoDriver
	}
	if err := s.printList(ctx); err != nil {
		return s.finish(err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := s.driver.Select(ctx, SelectConfig{
			Message:      "What next?",
			Options:      menu,
			DefaultIndex: 0,
		})
		if err != nil {
			return s.finish(err)
		}
		if choice < 0 || choice >= len(menu) {
			continue
		}
		action := menu[choice]
		if action == ActionQuit {
			return nil
		}
		if err := s.dispatch(ctx, action); err != nil {
			if errors.Is(err, ErrAborted) || ctx.Err() != nil {
				return s.finish(err)
			}
			s.logger.Debug("terminal action failed", zap.String("action", action), zap.Error(err))
			if err := s.report(ctx, err); err != nil {
				return s.finish(err)
			}
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, ErrAborted) {
		s.logger.Debug("terminal session aborted")
		return nil
	}
	return err
}

func (s *Session) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionAdd:
		return s.add(ctx)
	case ActionEdit:
		return s.edit(ctx)
	case ActionDelete:
		return s.remove(ctx)
	case ActionList:
		return s.printList(ctx)
	default:
		return fmt.Errorf("tui: unknown action %q", action)
	}
}

func (s *Session) add(ctx context.Context) error {
	s.controller.Cancel()
	return s.fillAndSubmit(ctx)
}

func (s *Session) edit(ctx context.Context) error {
	id, ok, err := s.pickRecord(ctx, "Edit which contact?")
	if err != nil || !ok {
		return err
	}
	if _, err := s.controller.Edit(id); err != nil {
		return err
	}
	if err := s.fillAndSubmit(ctx); err != nil {
		// Leave nothing half-loaded for the next action.
		s.controller.Cancel()
		return err
	}
	return nil
}

func (s *Session) remove(ctx context.Context) error {
	id, ok, err := s.pickRecord(ctx, "Delete which contact?")
	if err != nil || !ok {
		return err
	}
	confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Delete this contact?"})
	if err != nil || !confirmed {
		return err
	}
	if _, err := s.controller.Delete(id); err != nil {
		return err
	}
	return s.printList(ctx)
}

// fillAndSubmit prompts for every visible control, seeding defaults from the
// form, then submits the answers as a browser would.
func (s *Session) fillAndSubmit(ctx context.Context) error {
	form := s.controller.Form()
	spec := form.Model()
	collected := newAnswers(form)

	for _, control := range form.Controls() {
		if !promptable(control.Kind) {
			continue
		}
		field, _ := spec.Field(control.Name)
		label := field.Label
		if label == "" {
			label = control.Name
		}
		help := field.Description
		if help == "" && field.Placeholder != "" {
			help = "e.g. " + field.Placeholder
		}

		switch {
		case control.Kind.MultiValue():
			picked, err := s.driver.MultiSelect(ctx, SelectConfig{
				Message:  label,
				Options:  choiceLabels(control),
				Defaults: selectedIndices(control),
				Help:     help,
			})
			if err != nil {
				return err
			}
			values := make([]string, 0, len(picked))
			for _, idx := range picked {
				if idx >= 0 && idx < len(control.Choices) {
					values = append(values, control.Choices[idx].Value)
				}
			}
			collected.setMany(control.Name, values)
		case control.Kind == model.FieldKindTextArea:
			value, err := s.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: control.Value, Help: help})
			if err != nil {
				return err
			}
			collected.set(control.Name, value)
		default:
			value, err := s.driver.Input(ctx, InputConfig{
				Message:   label,
				Default:   control.Value,
				Help:      help,
				Validator: requiredValidator(field.Required, label),
			})
			if err != nil {
				return err
			}
			collected.set(control.Name, strings.TrimSpace(value))
		}
	}

	form.Submit(collected.values)
	mode := s.controller.Mode()
	record, err := s.controller.Submit()
	if err != nil {
		return err
	}
	verb := "Added"
	if mode == controller.ModeEdit {
		verb = "Updated"
	}
	display := render.NewListView([]contact.Record{record}).Entries[0].Display
	return s.driver.Info(ctx, s.theme.Info.Render(fmt.Sprintf("%s %s", verb, display)))
}

// pickRecord asks for one record. ok is false when the list is empty.
func (s *Session) pickRecord(ctx context.Context, message string) (string, bool, error) {
	records := s.controller.Records()
	if len(records) == 0 {
		return "", false, s.printList(ctx)
	}
	view := render.NewListView(records)
	options := make([]string, len(view.Entries))
	for i, entry := range view.Entries {
		options[i] = fmt.Sprintf("%s [%s]", entry.Display, entry.ID)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return "", false, err
	}
	if idx < 0 || idx >= len(records) {
		return "", false, nil
	}
	return records[idx].ID, true, nil
}

func (s *Session) printList(ctx context.Context) error {
	out, err := s.list.RenderList(ctx, render.NewListView(s.controller.Records()), s.renderOptions)
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

func (s *Session) report(ctx context.Context, err error) error {
	for _, message := range render.MapError(err) {
		line := s.theme.Error.Render(s.theme.ErrHint + " " + message)
		if infoErr := s.driver.Info(ctx, line); infoErr != nil {
			return infoErr
		}
	}
	return nil
}

func requiredValidator(required bool, label string) func(string) error {
	if !required {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
