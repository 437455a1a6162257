package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-contacts/internal/openapi/loader"
	internalParser "github.com/goliatone/go-contacts/internal/openapi/parser"
	"github.com/goliatone/go-contacts/pkg/model"
	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
	"github.com/goliatone/go-contacts/pkg/render"
	"github.com/goliatone/go-contacts/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchemaTransformer registers a Transformer that can mutate form models
// after building but before decorators run.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithUIDecorators registers decorators that should run against the generated
// form model.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to form model
// and renders views through a registry. Missing dependencies fall back to the
// built-in implementations.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	decorators      []model.Decorator
	transformer     Transformer
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// FormRequest describes the inputs required to build a form model from an
// OpenAPI operation.
type FormRequest struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have the
	// payload.
	Document *pkgopenapi.Document

	// OperationID selects the operation whose request body backs the form.
	OperationID string

	// Layout declares the controls, in order, with their kinds.
	Layout []model.FieldSpec
}

// Form executes the loader → parser → model builder sequence, then the
// transformer and decorators.
func (o *Orchestrator) Form(ctx context.Context, req FormRequest) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}
	if req.OperationID == "" {
		return model.FormModel{}, errors.New("orchestrator: operation id is required")
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}

	op, ok := operations[req.OperationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	form, err := o.builder.Build(op, req.Layout)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}

	if err := o.applyTransformer(ctx, &form); err != nil {
		return model.FormModel{}, err
	}
	if err := model.Decorate(&form, o.decorators...); err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: decorate form: %w", err)
	}
	return form, nil
}

// Output is a rendered view with the content type of the renderer that
// produced it.
type Output struct {
	Body        []byte
	ContentType string
}

// RenderPage renders a full page with the named renderer, or the default one
// when name is empty.
func (o *Orchestrator) RenderPage(ctx context.Context, name string, page render.PageView, options render.RenderOptions) (Output, error) {
	if err := o.initialiseErr; err != nil {
		return Output{}, err
	}
	renderer, err := o.rendererFor(name)
	if err != nil {
		return Output{}, err
	}
	pages, ok := renderer.(render.PageRenderer)
	if !ok {
		return Output{}, fmt.Errorf("orchestrator: renderer %q cannot render pages", renderer.Name())
	}
	body, err := pages.RenderPage(ctx, page, options)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: render page: %w", err)
	}
	return Output{Body: body, ContentType: renderer.ContentType()}, nil
}

// RenderList renders the record list with the named renderer, or the default
// one when name is empty.
func (o *Orchestrator) RenderList(ctx context.Context, name string, view render.ListView, options render.RenderOptions) (Output, error) {
	if err := o.initialiseErr; err != nil {
		return Output{}, err
	}
	renderer, err := o.rendererFor(name)
	if err != nil {
		return Output{}, err
	}
	body, err := renderer.RenderList(ctx, view, options)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: render list: %w", err)
	}
	return Output{Body: body, ContentType: renderer.ContentType()}, nil
}

// JSON returns the validated endpoint description encoded as JSON.
func (o *Orchestrator) JSON(ctx context.Context, req FormRequest) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	payload, err := o.parser.JSON(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: encode document: %w", err)
	}
	return payload, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req FormRequest) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.ListRenderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *model.FormModel) error {
	if o.transformer == nil || form == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry, err := render.NewRegistry(renderer)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
