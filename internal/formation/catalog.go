package formation

// ID names a layout in the catalog, e.g. "4-3-3".
type ID string

const (
	F433        ID = "4-3-3"
	F442        ID = "4-4-2"
	F352        ID = "3-5-2"
	F442Diamond ID = "4-4-2 (Diamond)"
	F431Nine    ID = "4-3-1 (9)"
	F323Nine    ID = "3-2-3 (9)"
	F1331Nine   ID = "3-1-3-1 (9)"
)

// Default is the layout a fresh match starts with.
const Default = F433

// SlotDef describes one position in a layout. GridArea is display metadata
// only; Order fixes the slot's place in lineup listings.
type SlotDef struct {
	ID       string
	GridArea string
	Order    int
}

// Layout is an ordered set of slots for one formation.
type Layout struct {
	ID    ID
	Slots []SlotDef
}

var layouts = map[ID]Layout{
	F433: {ID: F433, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "lcb", GridArea: "lcb", Order: 3},
		{ID: "rcb", GridArea: "rcb", Order: 4},
		{ID: "rb", GridArea: "rb", Order: 5},
		{ID: "lcm", GridArea: "lcm", Order: 6},
		{ID: "cm", GridArea: "cm", Order: 7},
		{ID: "rcm", GridArea: "rcm", Order: 8},
		{ID: "lw", GridArea: "lw", Order: 9},
		{ID: "rw", GridArea: "rw", Order: 10},
		{ID: "st", GridArea: "st", Order: 11},
	}},
	F442: {ID: F442, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "lcb", GridArea: "lcb", Order: 3},
		{ID: "rcb", GridArea: "rcb", Order: 4},
		{ID: "rb", GridArea: "rb", Order: 5},
		{ID: "lw", GridArea: "lw", Order: 6},
		{ID: "cm1", GridArea: "cm1", Order: 7},
		{ID: "cm2", GridArea: "cm2", Order: 8},
		{ID: "rw", GridArea: "rw", Order: 9},
		{ID: "st1", GridArea: "st1", Order: 10},
		{ID: "st2", GridArea: "st2", Order: 11},
	}},
	F352: {ID: F352, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "cb", GridArea: "cb", Order: 3},
		{ID: "rb", GridArea: "rb", Order: 4},
		{ID: "cdm", GridArea: "cdm", Order: 5},
		{ID: "lcm", GridArea: "lcm", Order: 6},
		{ID: "cm1", GridArea: "cm1", Order: 7},
		{ID: "cm2", GridArea: "cm2", Order: 8},
		{ID: "rcm", GridArea: "rcm", Order: 9},
		{ID: "st1", GridArea: "st1", Order: 10},
		{ID: "st2", GridArea: "st2", Order: 11},
	}},
	F442Diamond: {ID: F442Diamond, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "lcb", GridArea: "lcb", Order: 3},
		{ID: "rcb", GridArea: "rcb", Order: 4},
		{ID: "rb", GridArea: "rb", Order: 5},
		{ID: "cdm", GridArea: "cdm", Order: 6},
		{ID: "lw", GridArea: "lw", Order: 7},
		{ID: "rw", GridArea: "rw", Order: 8},
		{ID: "cam", GridArea: "cam", Order: 9},
		{ID: "st1", GridArea: "st1", Order: 10},
		{ID: "st2", GridArea: "st2", Order: 11},
	}},
	F431Nine: {ID: F431Nine, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "lcb", GridArea: "lcb", Order: 3},
		{ID: "rcb", GridArea: "rcb", Order: 4},
		{ID: "rb", GridArea: "rb", Order: 5},
		{ID: "cdm", GridArea: "cdm", Order: 6},
		{ID: "lw", GridArea: "lw", Order: 7},
		{ID: "rw", GridArea: "rw", Order: 8},
		{ID: "st1", GridArea: "st1", Order: 9},
	}},
	F323Nine: {ID: F323Nine, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "cb", GridArea: "cb", Order: 3},
		{ID: "rb", GridArea: "rb", Order: 4},
		{ID: "cm1", GridArea: "cm1", Order: 5},
		{ID: "cm2", GridArea: "cm2", Order: 6},
		{ID: "lw", GridArea: "lw", Order: 7},
		{ID: "rw", GridArea: "rw", Order: 8},
		{ID: "st1", GridArea: "st1", Order: 9},
	}},
	F1331Nine: {ID: F1331Nine, Slots: []SlotDef{
		{ID: "gk", GridArea: "gk", Order: 1},
		{ID: "lb", GridArea: "lb", Order: 2},
		{ID: "cb", GridArea: "cb", Order: 3},
		{ID: "rb", GridArea: "rb", Order: 4},
		{ID: "cdm", GridArea: "cdm", Order: 5},
		{ID: "lw", GridArea: "lw", Order: 6},
		{ID: "rw", GridArea: "rw", Order: 7},
		{ID: "cm", GridArea: "cm", Order: 8},
		{ID: "st1", GridArea: "st1", Order: 9},
	}},
}

// Lookup returns the layout for id. The second return is false for unknown
// formations so callers can fall back to an empty board instead of panicking.
func Lookup(id ID) (Layout, bool) {
	l, ok := layouts[id]
	return l, ok
}

// IDs lists every catalog entry in a stable display order.
func IDs() []ID {
	return []ID{F433, F442, F352, F442Diamond, F431Nine, F323Nine, F1331Nine}
}
