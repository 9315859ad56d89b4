package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/roster"
)

// StateResponse is the full read-side view the UI polls: the durable
// snapshot plus every derived value, recomputed at request time.
type StateResponse struct {
	match.Snapshot
	Queue           []match.SubRequest `json:"substitutionQueue"`
	ElapsedSec      float64            `json:"elapsedSec"`
	SubElapsedSec   float64            `json:"subElapsedSec"`
	GameElapsedSec  float64            `json:"gameElapsedSec"`
	FormattedClock  string             `json:"formattedClock"`
	RotationDue     bool               `json:"rotationDue"`
	AverageSec      float64            `json:"averageLiveMinutesSec"`
	LiveMinutesSec  map[string]float64 `json:"liveMinutesSec"`
	FormattedLiveBy map[string]string  `json:"formattedLiveMinutes"`
}

func nowSec() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) StateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.Engine.Snapshot()
		resp := StateResponse{
			Snapshot:        snap,
			Queue:           s.Engine.Queue(),
			ElapsedSec:      s.Engine.ElapsedSec(),
			SubElapsedSec:   s.Engine.SubClock().ElapsedSec(nowSec()),
			GameElapsedSec:  s.Engine.GameClock().ElapsedSec(nowSec()),
			FormattedClock:  match.FormatClock(s.Engine.ElapsedSec()),
			RotationDue:     s.Engine.RotationDue(),
			AverageSec:      s.Engine.AverageLiveMinutesSec(),
			LiveMinutesSec:  map[string]float64{},
			FormattedLiveBy: map[string]string{},
		}
		for _, p := range snap.Roster {
			resp.LiveMinutesSec[p.ID] = s.Engine.LiveMinutesSec(p.ID)
			resp.FormattedLiveBy[p.ID] = s.Engine.FormattedLiveMinutes(p.ID)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) RosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, s.Engine.Players())
		case http.MethodPost:
			var p match.Player
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				http.Error(w, "invalid player payload", http.StatusBadRequest)
				return
			}
			added := s.Engine.AddPlayer(p)
			writeJSON(w, http.StatusCreated, added)
		case http.MethodPatch:
			id := r.URL.Query().Get("id")
			var patch match.PlayerPatch
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				http.Error(w, "invalid patch payload", http.StatusBadRequest)
				return
			}
			if !s.Engine.UpdatePlayer(id, patch) {
				http.Error(w, "player not found", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			id := r.URL.Query().Get("id")
			if !s.Engine.RemovePlayer(id) {
				http.Error(w, "player not found", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) ToggleStarterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		onField := r.URL.Query().Get("onField") == "true"
		res := s.Engine.ToggleStarter(id, onField)
		writeJSON(w, http.StatusOK, map[string]string{"result": res.String()})
	}
}

func (s *Server) ImportRosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := roster.ImportRoster(r.Body)
		if err != nil {
			log.Error("Roster import failed", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, p := range players {
			s.Engine.AddPlayer(p)
		}
		writeJSON(w, http.StatusOK, map[string]int{"imported": len(players)})
	}
}

func (s *Server) ExportRosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="roster.csv"`)
		if err := roster.ExportRoster(w, s.Engine.Players(), s.Engine.LiveMinutesSec); err != nil {
			log.Error("Roster export failed", "error", err)
		}
	}
}

func (s *Server) ExportMinutesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="minutes.csv"`)
		if err := roster.ExportMinutes(w, s.Engine.Players(), s.Engine.LiveMinutesSec); err != nil {
			log.Error("Minutes export failed", "error", err)
		}
	}
}

func (s *Server) ExportSubsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="subs.csv"`)
		if err := roster.ExportSubs(w, s.Engine.Subs()); err != nil {
			log.Error("Subs export failed", "error", err)
		}
	}
}

func (s *Server) StartClockHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Engine.StartClock()
		writeJSON(w, http.StatusOK, s.Engine.Clock())
	}
}

func (s *Server) PauseClockHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Engine.PauseClock()
		writeJSON(w, http.StatusOK, s.Engine.Clock())
	}
}

func (s *Server) ResetClockHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Engine.ResetClock()
		writeJSON(w, http.StatusOK, s.Engine.Clock())
	}
}

func (s *Server) SetClockHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seconds, err := strconv.ParseFloat(r.URL.Query().Get("seconds"), 64)
		if err != nil {
			http.Error(w, "invalid seconds parameter", http.StatusBadRequest)
			return
		}
		s.Engine.SetClock(seconds)
		writeJSON(w, http.StatusOK, s.Engine.Clock())
	}
}

func (s *Server) ResetSubClockHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Engine.ResetSubClock()
		writeJSON(w, http.StatusOK, s.Engine.SubClock())
	}
}

func (s *Server) MakeSubHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req match.SubRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid sub payload", http.StatusBadRequest)
			return
		}
		res := s.Engine.MakeSub(req.InID, req.OutID)
		writeJSON(w, http.StatusOK, map[string]string{"result": res.String()})
	}
}

func (s *Server) QueueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, s.Engine.Queue())
		case http.MethodPost:
			var req match.SubRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid queue payload", http.StatusBadRequest)
				return
			}
			s.Engine.EnqueueSub(req)
			writeJSON(w, http.StatusOK, s.Engine.Queue())
		case http.MethodDelete:
			var req match.SubRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid queue payload", http.StatusBadRequest)
				return
			}
			s.Engine.CancelSub(req)
			writeJSON(w, http.StatusOK, s.Engine.Queue())
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) PerformSubsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := s.Engine.PerformSubs()
		out := make([]string, len(results))
		for i, res := range results {
			out[i] = res.String()
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": out})
	}
}

func (s *Server) FormationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]any{
				"formation": s.Engine.Formation(),
				"available": formation.IDs(),
				"tactics":   s.Engine.Tactics(),
			})
		case http.MethodPost:
			id := formation.ID(r.URL.Query().Get("id"))
			if id == "" {
				http.Error(w, "missing formation id", http.StatusBadRequest)
				return
			}
			s.Engine.SetFormation(id)
			writeJSON(w, http.StatusOK, s.Engine.Tactics())
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) AssignSlotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SlotID   string `json:"slotId"`
			PlayerID string `json:"playerId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid assign payload", http.StatusBadRequest)
			return
		}
		s.Engine.AssignPlayerToSlot(body.SlotID, body.PlayerID)
		writeJSON(w, http.StatusOK, s.Engine.Tactics())
	}
}

func (s *Server) SwapSlotsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SlotAID string `json:"slotAId"`
			SlotBID string `json:"slotBId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid swap payload", http.StatusBadRequest)
			return
		}
		s.Engine.SwapSlotPlayers(body.SlotAID, body.SlotBID)
		writeJSON(w, http.StatusOK, s.Engine.Tactics())
	}
}

func (s *Server) MoveSlotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SlotID string  `json:"slotId"`
			X      float64 `json:"x"`
			Y      float64 `json:"y"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid move payload", http.StatusBadRequest)
			return
		}
		s.Engine.MoveSlot(body.SlotID, body.X, body.Y)
		writeJSON(w, http.StatusOK, s.Engine.Tactics())
	}
}

func (s *Server) PlaceInSlotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SlotID   string `json:"slotId"`
			PlayerID string `json:"playerId"`
			Sub      bool   `json:"sub"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid place payload", http.StatusBadRequest)
			return
		}
		var res match.SubResult
		if body.Sub {
			res = s.Engine.SubstituteFromBench(body.PlayerID, body.SlotID)
		} else {
			res = s.Engine.PlacePlayerInSlot(body.SlotID, body.PlayerID)
		}
		writeJSON(w, http.StatusOK, map[string]string{"result": res.String()})
	}
}

// SlotSuggestionsHandler lists the players whose preferred positions suit
// a slot. Eligibility is advisory; the UI highlights these, nothing more.
func (s *Server) SlotSuggestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slotID := r.URL.Query().Get("slotId")
		if slotID == "" {
			http.Error(w, "missing slotId", http.StatusBadRequest)
			return
		}
		eligible := []match.Player{}
		for _, p := range s.Engine.Players() {
			if formation.Eligible(p.PositionTags, slotID) {
				eligible = append(eligible, p)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"slotId":   slotID,
			"tags":     formation.EligibleTags(slotID),
			"eligible": eligible,
		})
	}
}

func (s *Server) BenchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if playerID := r.URL.Query().Get("playerId"); playerID != "" {
			s.Engine.BenchPlayer(playerID)
		} else if slotID := r.URL.Query().Get("slotId"); slotID != "" {
			s.Engine.BenchPlayerFromSlot(slotID)
		} else {
			http.Error(w, "missing playerId or slotId", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, s.Engine.Tactics())
	}
}

func (s *Server) StatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		stat := r.URL.Query().Get("stat")
		dec := r.URL.Query().Get("op") == "dec"
		switch stat {
		case "shot":
			if dec {
				s.Engine.DecrementShot(id)
			} else {
				s.Engine.RecordShot(id)
			}
		case "pass":
			if dec {
				s.Engine.DecrementPass(id)
			} else {
				s.Engine.RecordPass(id)
			}
		case "save":
			if dec {
				s.Engine.DecrementSave(id)
			} else {
				s.Engine.RecordSave(id)
			}
		default:
			http.Error(w, "unknown stat", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) ConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, s.Engine.Config())
		case http.MethodPost:
			var patch match.ConfigPatch
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				http.Error(w, "invalid config payload", http.StatusBadRequest)
				return
			}
			s.Engine.SetConfig(patch)
			writeJSON(w, http.StatusOK, s.Engine.Config())
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) ResetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("roster") == "true" {
			log.Info("Received request to clear the roster")
			s.Engine.ResetRoster()
		} else {
			log.Info("Received request to reset match state")
			s.Engine.ResetMatch()
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Reset done!")
	}
}

func (s *Server) DebugExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := diag.BuildReport(s.Engine.Snapshot(), s.Ring)
		payload, err := report.MarshalIndent()
		if err != nil {
			log.Error("Failed to build debug report", "error", err)
			http.Error(w, "failed to build report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="debug.json"`)
		w.Write(payload)
	}
}
