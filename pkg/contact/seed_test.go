package contact

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSeedAcceptsStringAndListContacts(t *testing.T) {
	t.Parallel()

	data := []byte(`
- name: Acer.com
  address: 76 John Street London
  telephone: "01234666333"
  email: acer@acer.com
  contacts: Jon Smith, Ann Lee
- id: ignored
  name: Sprint.com
  contacts: [Virginie Charter]
`)
	seed, err := ParseSeed(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []Fields{
		{
			Name:      "Acer.com",
			Address:   "76 John Street London",
			Telephone: "01234666333",
			Email:     "acer@acer.com",
			Contacts:  []string{"Jon Smith", "Ann Lee"},
		},
		{Name: "Sprint.com", Contacts: []string{"Virginie Charter"}},
	}
	if diff := cmp.Diff(want, seed); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSeedAcceptsJSON(t *testing.T) {
	t.Parallel()

	seed, err := ParseSeed([]byte(`[{"name": "A", "contacts": ["x", "y"]}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]Fields{{Name: "A", Contacts: []string{"x", "y"}}}, seed); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSeedRejectsNonSequences(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		`name: A`,
		`"just a string"`,
		`{"name": "A"}`,
		`[{"name": "A", "contacts": {"nested": true}}]`,
	} {
		if _, err := ParseSeed([]byte(input)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseSeed(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestParseSeedEmptyDocument(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  \n", "# nothing\n"} {
		seed, err := ParseSeed([]byte(input))
		if err != nil {
			t.Fatalf("ParseSeed(%q): %v", input, err)
		}
		if len(seed) != 0 {
			t.Fatalf("ParseSeed(%q) = %v, want empty", input, seed)
		}
	}
}

func TestNewFromSeedIgnoresSeedIDs(t *testing.T) {
	t.Parallel()

	c, err := NewFromSeed([]byte("- id: fixed\n  name: A\n- id: fixed\n  name: B\n"))
	if err != nil {
		t.Fatalf("new from seed: %v", err)
	}
	all := c.All()
	if len(all) != 2 || all[0].ID == "fixed" || all[0].ID == all[1].ID {
		t.Fatalf("unexpected ids %q %q", all[0].ID, all[1].ID)
	}
}
