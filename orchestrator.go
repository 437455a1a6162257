package contacts

import (
	"context"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/model"
	"github.com/goliatone/go-contacts/pkg/orchestrator"
	"github.com/goliatone/go-contacts/pkg/render"
)

// RenderOptions describes per-request messages, locale and theme.
type RenderOptions = render.RenderOptions

// NewOrchestrator returns an orchestrator whose loader resolves the bundled
// description. Options apply after the defaults.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	base := []orchestrator.Option{
		orchestrator.WithLoader(NewLoader()),
		orchestrator.WithParser(NewParser()),
	}
	return orchestrator.New(append(base, options...)...)
}

// ContactForm builds the contact form model from the bundled description and
// the record layout.
func ContactForm(ctx context.Context, orch *orchestrator.Orchestrator) (model.FormModel, error) {
	if orch == nil {
		orch = NewOrchestrator()
	}
	return orch.Form(ctx, orchestrator.FormRequest{
		Source:      SpecSource(),
		OperationID: SubmitOperationID,
		Layout:      contact.Layout,
	})
}

// OpenAPIJSON returns the validated bundled description as JSON.
func OpenAPIJSON(ctx context.Context, orch *orchestrator.Orchestrator) ([]byte, error) {
	if orch == nil {
		orch = NewOrchestrator()
	}
	return orch.JSON(ctx, orchestrator.FormRequest{Source: SpecSource()})
}

// NewCollection seeds a collection from data, or from the bundled seed when
// data is empty.
func NewCollection(data []byte, opts ...contact.Option) (*contact.Collection, error) {
	if len(data) == 0 {
		data = defaultSeed
	}
	return contact.NewFromSeed(data, opts...)
}
