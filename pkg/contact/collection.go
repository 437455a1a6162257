package contact

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxIDAttempts bounds how often a custom generator may collide before the
// collection falls back to random UUIDs.
const maxIDAttempts = 8

// Collection is an ordered in-memory store of records. It exclusively owns its
// sequence: every read returns copies and every mutation goes through its
// methods. A Collection is not safe for concurrent use; hosts serialise
// access.
type Collection struct {
	records []Record
	issued  map[string]struct{}
	newID   func() string
	logger  *zap.Logger
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger attaches a logger used for lookup diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Collection) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a collection seeded with one record per field-set, in order.
// Each record receives a fresh id.
func New(seed []Fields, opts ...Option) *Collection {
	c := &Collection{
		records: make([]Record, 0, len(seed)),
		issued:  make(map[string]struct{}, len(seed)),
		newID:   uuid.NewString,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	for _, fields := range seed {
		c.records = append(c.records, fields.record(c.generateID()))
	}
	return c
}

// NewFromSeed parses a YAML or JSON seed document and builds a collection
// from it.
func NewFromSeed(data []byte, opts ...Option) (*Collection, error) {
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, err
	}
	return New(seed, opts...), nil
}

// generateID returns an id that has never been issued by this collection,
// including ids of records that were since removed.
func (c *Collection) generateID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if id := c.newID(); c.claim(id) {
			return id
		}
	}
	c.logger.Warn("contact id generator keeps colliding, falling back to uuid")
	for {
		if id := uuid.NewString(); c.claim(id) {
			return id
		}
	}
}

func (c *Collection) claim(id string) bool {
	if id == "" {
		return false
	}
	if _, taken := c.issued[id]; taken {
		return false
	}
	c.issued[id] = struct{}{}
	return true
}

// Add appends a new record built from fields and returns a copy of it.
func (c *Collection) Add(fields *Fields) (Record, error) {
	if fields == nil {
		return Record{}, fmt.Errorf("add: fields are required: %w", ErrInvalidInput)
	}
	record := fields.record(c.generateID())
	c.records = append(c.records, record)
	c.logger.Debug("contact added", zap.String("id", record.ID))
	return record.Clone(), nil
}

// Get returns a copy of the record with the given id. A miss is reported by
// the boolean, not as an error.
func (c *Collection) Get(id string) (Record, bool, error) {
	if id == "" {
		return Record{}, false, fmt.Errorf("get: id is required: %w", ErrInvalidArgument)
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return Record{}, false, nil
	}
	return c.records[idx].Clone(), true, nil
}

// indexOf returns the position of id, or -1 when absent.
func (c *Collection) indexOf(id string) int {
	for i := range c.records {
		if c.records[i].ID == id {
			return i
		}
	}
	c.logger.Debug("contact id not in collection", zap.String("id", id))
	return -1
}

// All returns a copy of every record in insertion order.
func (c *Collection) All() []Record {
	out := make([]Record, len(c.records))
	for i, record := range c.records {
		out[i] = record.Clone()
	}
	return out
}

// Len returns the number of stored records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Update merges patch over the record's fields and stores the result at the
// same position. The id survives the update.
func (c *Collection) Update(id string, patch Patch) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("update: id is required: %w", ErrInvalidArgument)
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return Record{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	updated := patch.apply(c.records[idx].Fields()).record(id)
	c.records[idx] = updated
	c.logger.Debug("contact updated", zap.String("id", id))
	return updated.Clone(), nil
}

// Remove deletes the record with the given id and returns a copy of the
// remaining records. A miss returns nil and false without changing anything.
func (c *Collection) Remove(id string) ([]Record, bool, error) {
	if id == "" {
		return nil, false, fmt.Errorf("remove: id is required: %w", ErrInvalidArgument)
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, false, nil
	}
	c.records = append(c.records[:idx], c.records[idx+1:]...)
	c.logger.Debug("contact removed", zap.String("id", id))
	return c.All(), true, nil
}

// RemoveAll clears the collection.
func (c *Collection) RemoveAll() {
	c.records = c.records[:0]
	c.logger.Debug("contacts cleared")
}
