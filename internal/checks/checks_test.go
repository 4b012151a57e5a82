package checks

import (
	"reflect"
	"testing"
)

// mockCheck implements Check for testing
type mockCheck struct {
	id ID
	p  int
	ff bool
	r  Result
}

func (m mockCheck) ID() ID             { return m.id }
func (m mockCheck) Run(_ Input) Result { return m.r }
func (m mockCheck) NeedsContent() bool { return false }
func (m mockCheck) FailFast() bool     { return m.ff }
func (m mockCheck) Priority() int      { return m.p }

// isolateRegistry empties the registry for one test and restores the
// built-in checks afterwards.
func isolateRegistry(t *testing.T) {
	t.Helper()
	saved := All
	Reset()
	t.Cleanup(func() { All = saved })
}

func TestBuiltinChecks_RegisteredInDeclarationOrder(t *testing.T) {
	got := Sorted()
	ids := make([]ID, len(got))
	for i, c := range got {
		ids[i] = c.ID()
	}
	if !reflect.DeepEqual(ids, IDs()) {
		t.Fatalf("order mismatch\n got: %v\nwant: %v", ids, IDs())
	}
}

func TestBuiltinChecks_ContentAndFailFastFlags(t *testing.T) {
	want := map[ID][2]bool{ // {NeedsContent, FailFast}
		CSVExtension:       {false, false},
		NotEmpty:           {true, true},
		NoEmptyRows:        {true, false},
		SemicolonSeparator: {true, false},
	}
	for _, c := range Sorted() {
		w := want[c.ID()]
		if c.NeedsContent() != w[0] || c.FailFast() != w[1] {
			t.Fatalf("%s: NeedsContent=%v FailFast=%v, want %v %v",
				c.ID(), c.NeedsContent(), c.FailFast(), w[0], w[1])
		}
	}
}

func TestSorted_EmptyRegistry(t *testing.T) {
	isolateRegistry(t)
	got := Sorted()
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d", len(got))
	}
}

func TestRegisterAndSorted_ByPriorityThenID(t *testing.T) {
	isolateRegistry(t)

	// Register in a messy order
	Register(mockCheck{id: "b", p: 1})
	Register(mockCheck{id: "c", p: 2})
	Register(mockCheck{id: "a", p: 1})

	got := Sorted()

	ids := []ID{got[0].ID(), got[1].ID(), got[2].ID()}
	want := []ID{"a", "b", "c"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("order mismatch\n got: %v\nwant: %v", ids, want)
	}
}

func TestSorted_IsCopyNotAlias(t *testing.T) {
	isolateRegistry(t)

	Register(mockCheck{id: "x", p: 1})
	Register(mockCheck{id: "y", p: 2})

	sorted := Sorted()
	if len(sorted) != len(All) {
		t.Fatalf("length mismatch: sorted=%d all=%d", len(sorted), len(All))
	}

	sorted[0] = mockCheck{id: "MUTATED", p: 0}

	if All[0].ID() == "MUTATED" {
		t.Fatalf("Sorted must return a copy; mutation leaked into All")
	}
}

func TestSorted_StableWhenIDAndPriorityEqual(t *testing.T) {
	isolateRegistry(t)

	first := mockCheck{id: "dup", p: 10, r: Result{Detail: "first"}}
	second := mockCheck{id: "dup", p: 10, r: Result{Detail: "second"}}

	Register(first)
	Register(second)

	got := Sorted()
	if len(got) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(got))
	}
	g0, ok0 := got[0].(mockCheck)
	g1, ok1 := got[1].(mockCheck)
	if !ok0 || !ok1 {
		t.Fatalf("type assertion to mockCheck failed")
	}
	if !reflect.DeepEqual(g0, first) || !reflect.DeepEqual(g1, second) {
		t.Fatalf("stable order violated: got (%v, %v), want (%v, %v)", g0, g1, first, second)
	}
}

func TestStatus_TextRoundTrip(t *testing.T) {
	for _, s := range []Status{Pending, Success, Error} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back Status
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != s {
			t.Fatalf("round trip: got %v, want %v", back, s)
		}
	}

	if _, err := Status(42).MarshalText(); err == nil {
		t.Fatal("expected error for unknown status")
	}
	var s Status
	if err := s.UnmarshalText([]byte("PASS")); err == nil {
		t.Fatal("expected error for unknown status text")
	}
}

func TestDescribe_Locales(t *testing.T) {
	es := ResolveLocale("es-AR")
	en := ResolveLocale("en-GB")

	if got, want := Describe(NoEmptyRows, es), "El archivo no debe tener filas vacías"; got != want {
		t.Fatalf("Describe(es) = %q, want %q", got, want)
	}
	if got, want := Describe(SemicolonSeparator, en), "The file must be separated by semicolons (;)"; got != want {
		t.Fatalf("Describe(en) = %q, want %q", got, want)
	}
	if got := ResolveLocale("not a tag!"); got != Supported[0] {
		t.Fatalf("ResolveLocale(garbage) = %v, want default %v", got, Supported[0])
	}
	if got := ResolveLocale("ja"); got != Supported[0] {
		t.Fatalf("ResolveLocale(ja) = %v, want default %v", got, Supported[0])
	}
	if got := Describe("unknown", en); got != "unknown" {
		t.Fatalf("Describe(unknown) = %q", got)
	}
}
