package module

import (
	"strings"
	"testing"
)

func TestCatalogueComplete(t *testing.T) {
	if len(All()) != 7 {
		t.Fatalf("expected 7 modules, got %d", len(All()))
	}
	if len(BaseModules()) != 3 {
		t.Errorf("expected 3 base modules, got %d", len(BaseModules()))
	}
	if len(Modifiers()) != 4 {
		t.Errorf("expected 4 modifiers, got %d", len(Modifiers()))
	}

	for _, typ := range Types() {
		m, ok := Lookup(typ)
		if !ok {
			t.Errorf("Lookup(%s) failed", typ)
			continue
		}
		if m.Type != typ {
			t.Errorf("template for %s has type %s", typ, m.Type)
		}
	}
}

func TestModifierFlags(t *testing.T) {
	tests := []struct {
		typ      Type
		modifier bool
	}{
		{Normal, false},
		{Piercing, false},
		{AOE, false},
		{BouncePlus, true},
		{ScatterPlus, true},
		{VolleyPlus, true},
		{CollisionTrigger, true},
	}

	for _, tc := range tests {
		if got := MustLookup(tc.typ).IsModifier; got != tc.modifier {
			t.Errorf("%s IsModifier = %v, expected %v", tc.typ, got, tc.modifier)
		}
	}
}

func TestNewAssignsFreshIDs(t *testing.T) {
	a := New(Normal)
	b := New(Normal)

	if a.ID == b.ID {
		t.Errorf("two instances share ID %q", a.ID)
	}
	if !strings.HasPrefix(a.ID, "normal-") {
		t.Errorf("instance ID %q should carry the template prefix", a.ID)
	}

	c := a.Clone()
	if c.ID == a.ID || c.Type != a.Type {
		t.Errorf("Clone() = %+v, expected same type with new ID", c)
	}

	// The template is untouched.
	if MustLookup(Normal).ID != "normal" {
		t.Error("New() mutated the catalogue template")
	}
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup should panic on unknown type")
		}
	}()
	MustLookup(Type("LASER"))
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"NORMAL", Normal, false},
		{"bounce-plus", BouncePlus, false},
		{" collision_trigger ", CollisionTrigger, false},
		{"laser", "", true},
	}

	for _, tc := range tests {
		got, err := ParseType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseType(%q) = %s, expected %s", tc.in, got, tc.want)
		}
	}
}
