package formation

// PositionTag is a player's preferred position, as entered on the roster.
type PositionTag string

const (
	GK  PositionTag = "GK"
	LB  PositionTag = "LB"
	RB  PositionTag = "RB"
	CB  PositionTag = "CB"
	LWB PositionTag = "LWB"
	RWB PositionTag = "RWB"
	CDM PositionTag = "CDM"
	CM  PositionTag = "CM"
	CAM PositionTag = "CAM"
	LW  PositionTag = "LW"
	RW  PositionTag = "RW"
	CF  PositionTag = "CF"
	ST  PositionTag = "ST"
)

var allTags = map[PositionTag]bool{
	GK: true, LB: true, RB: true, CB: true, LWB: true, RWB: true,
	CDM: true, CM: true, CAM: true, LW: true, RW: true, CF: true, ST: true,
}

// ValidTag reports whether t is one of the known position tags.
func ValidTag(t PositionTag) bool {
	return allTags[t]
}

// slotEligibleTags maps a slot id to the position tags that suit it.
// Slots absent from the map accept any player.
var slotEligibleTags = map[string][]PositionTag{
	"gk":  {GK},
	"lb":  {LB, LWB},
	"lcb": {CB},
	"cb":  {CB},
	"rcb": {CB},
	"rb":  {RB, RWB},
	"cdm": {CDM, CM},
	"lcm": {CDM, CM, CAM},
	"cm":  {CDM, CM, CAM},
	"cm1": {CDM, CM, CAM},
	"cm2": {CDM, CM, CAM},
	"rcm": {CDM, CM, CAM},
	"cam": {CAM, CM},
	"lw":  {LW},
	"rw":  {RW},
	"st":  {ST, CF},
	"st1": {ST, CF},
	"st2": {ST, CF},
}

// EligibleTags returns the preferred tags for a slot, or nil when the slot
// accepts anyone.
func EligibleTags(slotID string) []PositionTag {
	return slotEligibleTags[slotID]
}

// Eligible reports whether a player with the given tags suits a slot.
// Eligibility is advisory: it drives bench suggestions, it is never enforced.
func Eligible(tags []PositionTag, slotID string) bool {
	want := slotEligibleTags[slotID]
	if len(want) == 0 {
		return true
	}
	for _, t := range tags {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}
