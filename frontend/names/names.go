package names

import (
	"fmt"
	"sync"
)

// Ref identifies an interned name within a Table. The zero Ref is NoName.
type Ref uint32

// UniqueKind tags the pass that minted a fresh unique name.
type UniqueKind uint8

const (
	UniqueNone UniqueKind = iota
	UniqueDesugar
)

// Table interns name strings and mints fresh unique names. It is the
// only piece of state shared between desugar invocations, so all access
// is guarded by a mutex (distinct trees may be lowered concurrently).
type Table struct {
	mu      sync.Mutex
	strs    []string
	index   map[string]Ref
	uniques map[uniqueKey]Ref
}

type uniqueKey struct {
	kind    UniqueKind
	base    Ref
	counter uint16
}

// NewTable returns a Table pre-populated with the well-known names, in
// the fixed order that makes the Ref constants below valid.
func NewTable() *Table {
	t := &Table{
		index:   make(map[string]Ref, len(wellKnown)*2),
		uniques: make(map[uniqueKey]Ref),
	}
	for _, s := range wellKnown {
		t.enter(s)
	}
	return t
}

func (t *Table) enter(s string) Ref {
	if ref, ok := t.index[s]; ok {
		return ref
	}
	ref := Ref(len(t.strs))
	t.strs = append(t.strs, s)
	t.index[s] = ref
	return ref
}

// EnterUTF8 interns s and returns its Ref, stable across calls.
func (t *Table) EnterUTF8(s string) Ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enter(s)
}

// FreshUnique mints a name unique for the (kind, base, counter) triple.
// Distinct triples yield distinct Refs; repeated calls with the same
// triple yield the same Ref.
func (t *Table) FreshUnique(kind UniqueKind, base Ref, counter uint16) Ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := uniqueKey{kind, base, counter}
	if ref, ok := t.uniques[key]; ok {
		return ref
	}
	// the '$' separator cannot occur in identifiers coming from the
	// parser, so unique names never collide with user names
	display := fmt.Sprintf("%s$%d", t.strs[base], counter)
	ref := Ref(len(t.strs))
	t.strs = append(t.strs, display)
	t.uniques[key] = ref
	return ref
}

// Str returns the display string for ref.
func (t *Table) Str(ref Ref) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.strs[ref]
}

// AddEq returns the setter name for ref: `foo` becomes `foo=`.
func (t *Table) AddEq(ref Ref) Ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enter(t.strs[ref] + "=")
}

// IsUnique reports whether ref was minted by FreshUnique rather than
// entered from source.
func (t *Table) IsUnique(ref Ref) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.index[t.strs[ref]]
	return !ok
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.strs)
}
