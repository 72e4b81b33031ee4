// Package htmltag classifies HTML tag names into the categories the
// serializer cares about: void elements, block-level elements, and the
// raw-text / RCDATA content models. Lookups are by resolved tag name;
// the tables carry no namespace information.
package htmltag

// Category is one of the tag classes tracked by a Table.
type Category int

const (
	Void Category = iota + 1
	Block
	RawText
	RCDATA
)

func (c Category) String() string {
	switch c {
	case Void:
		return "void"
	case Block:
		return "block"
	case RawText:
		return "rawtext"
	case RCDATA:
		return "rcdata"
	default:
		return "unknown"
	}
}

type tagSet map[string]struct{}

// Table maps tag names to categories. The zero value is unusable; use
// New or start from HTML5.
type Table struct {
	sets map[Category]tagSet
}

func New() *Table {
	return &Table{
		sets: map[Category]tagSet{
			Void:    {},
			Block:   {},
			RawText: {},
			RCDATA:  {},
		},
	}
}

// Is reports whether name belongs to the given category.
func (t *Table) Is(name string, cat Category) bool {
	set, ok := t.sets[cat]
	if !ok {
		return false
	}
	_, ok = set[name]
	return ok
}

func (t *Table) IsVoid(name string) bool    { return t.Is(name, Void) }
func (t *Table) IsBlock(name string) bool   { return t.Is(name, Block) }
func (t *Table) IsRawText(name string) bool { return t.Is(name, RawText) }
func (t *Table) IsRCDATA(name string) bool  { return t.Is(name, RCDATA) }

// Add registers extra tag names under a category. Unknown categories
// are ignored.
func (t *Table) Add(cat Category, names ...string) *Table {
	set, ok := t.sets[cat]
	if !ok {
		return t
	}
	for _, name := range names {
		set[name] = struct{}{}
	}
	return t
}

// Clone returns an independent copy of the table, typically used to
// layer user-defined tags on top of HTML5.
func (t *Table) Clone() *Table {
	c := New()
	for cat, set := range t.sets {
		for name := range set {
			c.sets[cat][name] = struct{}{}
		}
	}
	return c
}
