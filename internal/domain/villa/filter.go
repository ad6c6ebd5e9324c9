package villa

import "strings"

// Op is a supported filter comparison.
type Op int

const (
	// OpEq matches rows whose column equals the value.
	OpEq Op = iota
	// OpContains matches string columns containing the value, case-insensitively.
	OpContains
)

// Filter narrows a repository read. Filters are only built through the
// constructors below so Column is always a known column name.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// ByID matches a villa by its identifier.
func ByID(id int) Filter {
	return Filter{Column: "id", Op: OpEq, Value: id}
}

// NameKey is the form of a villa name that uniqueness is checked on:
// trimmed and lower-cased with full Unicode case mapping.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ByName matches a villa by name, ignoring case and surrounding spaces.
func ByName(name string) Filter {
	return Filter{Column: "name_key", Op: OpEq, Value: NameKey(name)}
}

// NameContains matches villas whose name contains s, ignoring case.
func NameContains(s string) Filter {
	return Filter{Column: "name", Op: OpContains, Value: s}
}

// ByOccupancy matches villas with exactly n guests of capacity.
func ByOccupancy(n int) Filter {
	return Filter{Column: "occupancy", Op: OpEq, Value: n}
}

// ByVillaNo matches a villa number by its natural key.
func ByVillaNo(no int) Filter {
	return Filter{Column: "villa_no", Op: OpEq, Value: no}
}

// ByOwner matches villa numbers belonging to the given villa.
func ByOwner(villaID int) Filter {
	return Filter{Column: "villa_id", Op: OpEq, Value: villaID}
}

// PrimaryKey returns the key value when filters select exactly one row by
// the given key column.
func PrimaryKey(column string, filters []Filter) (int, bool) {
	if len(filters) != 1 {
		return 0, false
	}
	f := filters[0]
	if f.Column != column || f.Op != OpEq {
		return 0, false
	}
	id, ok := f.Value.(int)
	return id, ok
}
