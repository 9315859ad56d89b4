// Package roster handles the tabular, human-editable import/export formats:
// a roster sheet a coach can edit in a spreadsheet, plus minutes and
// substitution reports.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
)

// ExportRoster writes the roster sheet: name, jersey number, pipe-delimited
// preferred position tags, on-field flag and formatted live minutes.
func ExportRoster(w io.Writer, players []match.Player, liveMinutes func(id string) float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Number", "Positions", "OnField", "Minutes"}); err != nil {
		return err
	}
	for _, p := range players {
		row := []string{
			p.Name,
			numberField(p.Number),
			joinTags(p.PositionTags),
			yesNo(p.OnField),
			match.FormatClock(liveMinutes(p.ID)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportRoster parses a roster sheet back into players. Within one batch,
// (name, number) is the dedup key and rows with a blank name are skipped.
// Unknown position tags are dropped with a warning rather than failing the
// import.
func ImportRoster(r io.Reader) ([]match.Player, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameIdx, ok := col["name"]
	if !ok {
		return nil, fmt.Errorf("roster sheet has no Name column")
	}

	var players []match.Player
	seen := map[string]bool{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}

		name := strings.TrimSpace(field(row, nameIdx))
		if name == "" {
			continue
		}
		number := 0
		if i, ok := col["number"]; ok {
			if n, err := strconv.Atoi(strings.TrimSpace(field(row, i))); err == nil {
				number = n
			}
		}
		key := fmt.Sprintf("%s|%d", name, number)
		if seen[key] {
			continue
		}
		seen[key] = true

		var tags []formation.PositionTag
		if i, ok := col["positions"]; ok {
			tags = parseTags(field(row, i))
		} else if i, ok := col["preferredpos"]; ok {
			tags = parseTags(field(row, i))
		}

		players = append(players, match.Player{
			Name:         name,
			Number:       number,
			PositionTags: tags,
		})
	}
	log.Info("Parsed roster sheet", "players", len(players))
	return players, nil
}

// ExportMinutes writes the playing-time report, one row per player with
// both formatted and raw seconds.
func ExportMinutes(w io.Writer, players []match.Player, liveMinutes func(id string) float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "number", "name", "minutes", "seconds", "onField", "positions"}); err != nil {
		return err
	}
	for _, p := range players {
		sec := liveMinutes(p.ID)
		row := []string{
			p.ID,
			numberField(p.Number),
			p.Name,
			match.FormatClock(sec),
			strconv.Itoa(int(sec)),
			yesNo(p.OnField),
			joinTags(p.PositionTags),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSubs writes the committed substitution log.
func ExportSubs(w io.Writer, subs []match.SubEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "playerInId", "playerOutId", "note"}); err != nil {
		return err
	}
	for _, s := range subs {
		ts := time.UnixMilli(s.TimestampMs).UTC().Format(time.RFC3339)
		if err := cw.Write([]string{s.ID, ts, s.PlayerInID, s.PlayerOutID, s.Note}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseTags(raw string) []formation.PositionTag {
	var tags []formation.PositionTag
	for _, part := range strings.Split(raw, "|") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		tag := formation.PositionTag(part)
		if !formation.ValidTag(tag) {
			log.Warn("Dropping unknown position tag on import", "tag", part)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func joinTags(tags []formation.PositionTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, "|")
}

func numberField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
