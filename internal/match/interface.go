package match

import "github.com/mauv0809/touchline/internal/formation"

// MatchEngine defines the narrow interface the outer surfaces (HTTP, CLI,
// persistence) use to read from and write to the match state. All mutators
// are synchronous and atomic; none of them ever throws the on-field cap at
// the caller as an error; capacity violations come back as a SubResult.
type MatchEngine interface {
	// Roster
	AddPlayer(p Player) Player
	UpdatePlayer(id string, patch PlayerPatch) bool
	RemovePlayer(id string) bool
	ToggleStarter(id string, onField bool) SubResult
	ResetRoster()
	Players() []Player
	PlayerByID(id string) (Player, bool)
	RecordShot(id string)
	DecrementShot(id string)
	RecordPass(id string)
	DecrementPass(id string)
	RecordSave(id string)
	DecrementSave(id string)

	// Clock
	StartClock()
	PauseClock()
	ResetClock()
	SetClock(accumulatedSec float64)
	ResetSubClock()
	Clock() ClockState
	SubClock() ClockState
	GameClock() ClockState
	ElapsedSec() float64
	RotationDue() bool

	// Substitutions
	MakeSub(inID, outID string) SubResult
	EnqueueSub(req SubRequest)
	CancelSub(req SubRequest)
	Queue() []SubRequest
	PerformSubs() []SubResult
	Subs() []SubEvent

	// Tactics
	AssignPlayerToSlot(slotID, playerID string)
	SwapSlotPlayers(slotAID, slotBID string)
	MoveSlot(slotID string, x, y float64)
	BenchPlayer(playerID string)
	BenchPlayerFromSlot(slotID string)
	PlacePlayerInSlot(slotID, playerID string) SubResult
	SubstituteFromBench(benchPlayerID, slotID string) SubResult
	SetFormation(id formation.ID)
	Formation() formation.ID
	Tactics() []TacticsSlot

	// Derived reads
	LiveMinutesSec(playerID string) float64
	FormattedLiveMinutes(playerID string) string
	AverageLiveMinutesSec() float64

	// Config and lifecycle
	Config() Config
	SetConfig(patch ConfigPatch)
	ResetMatch()
	Snapshot() Snapshot
	Restore(snap Snapshot)
	Subscribe(fn func(Snapshot))
}
