package model

import (
	"github.com/goliatone/go-contacts/internal/model"
	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation, layout []FieldSpec) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler func(string) string
	labels  map[string]string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithLabels overrides labels for individual fields. Overrides win over
// schema titles.
func WithLabels(labels map[string]string) BuilderOption {
	return func(opts *builderOptions) {
		if opts.labels == nil {
			opts.labels = make(map[string]string, len(labels))
		}
		for name, label := range labels {
			opts.labels[name] = label
		}
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return model.New(model.Options{
		Labeler: cfg.labeler,
		Labels:  cfg.labels,
	})
}
