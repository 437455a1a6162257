package contact

// Record is a single contact held by a Collection. Records are values: the
// collection hands out clones, so mutating a returned Record never changes the
// stored one.
type Record struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Address   string   `json:"address" yaml:"address"`
	Telephone string   `json:"telephone" yaml:"telephone"`
	Email     string   `json:"email" yaml:"email"`
	Contacts  []string `json:"contacts" yaml:"contacts"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	if r.Contacts != nil {
		out.Contacts = append([]string{}, r.Contacts...)
	}
	return out
}

// Fields returns the data fields of the record without its id.
func (r Record) Fields() Fields {
	return Fields{
		Name:      r.Name,
		Address:   r.Address,
		Telephone: r.Telephone,
		Email:     r.Email,
		Contacts:  cloneList(r.Contacts),
	}
}

// Fields is a field-set: the data of a record without an identity. Seeds and
// Add take field-sets so callers can never choose an id.
type Fields struct {
	Name      string   `json:"name" yaml:"name"`
	Address   string   `json:"address" yaml:"address"`
	Telephone string   `json:"telephone" yaml:"telephone"`
	Email     string   `json:"email" yaml:"email"`
	Contacts  []string `json:"contacts" yaml:"contacts"`
}

func (f Fields) record(id string) Record {
	return Record{
		ID:        id,
		Name:      f.Name,
		Address:   f.Address,
		Telephone: f.Telephone,
		Email:     f.Email,
		Contacts:  cloneList(f.Contacts),
	}
}

// Patch carries a partial update. Nil fields keep the existing value.
type Patch struct {
	Name      *string
	Address   *string
	Telephone *string
	Email     *string
	Contacts  *[]string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.Telephone == nil && p.Email == nil && p.Contacts == nil
}

func (p Patch) apply(f Fields) Fields {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Address != nil {
		f.Address = *p.Address
	}
	if p.Telephone != nil {
		f.Telephone = *p.Telephone
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Contacts != nil {
		f.Contacts = cloneList(*p.Contacts)
	}
	return f
}

// Set returns a pointer to value, for building patches inline.
func Set[T any](value T) *T {
	return &value
}

func cloneList(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string{}, values...)
}
