package roster_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRoster(t *testing.T) {
	sheet := `Name,Number,Positions
Ada,7,GK|CB
Ben,10,st
,4,CM
Ada,7,GK
Cal,,LW|BOGUS
`
	players, err := roster.ImportRoster(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, players, 3, "blank names and duplicate (name, number) rows are skipped")

	assert.Equal(t, "Ada", players[0].Name)
	assert.Equal(t, 7, players[0].Number)
	assert.Equal(t, []formation.PositionTag{formation.GK, formation.CB}, players[0].PositionTags)

	assert.Equal(t, []formation.PositionTag{formation.ST}, players[1].PositionTags, "tags are case insensitive on import")

	assert.Equal(t, "Cal", players[2].Name)
	assert.Zero(t, players[2].Number)
	assert.Equal(t, []formation.PositionTag{formation.LW}, players[2].PositionTags, "unknown tags are dropped, not fatal")
}

func TestImportRoster_LegacyHeader(t *testing.T) {
	sheet := `name,preferredPos
Ada,GK
`
	players, err := roster.ImportRoster(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, []formation.PositionTag{formation.GK}, players[0].PositionTags)
}

func TestImportRoster_MissingNameColumn(t *testing.T) {
	_, err := roster.ImportRoster(strings.NewReader("Number,Positions\n7,GK\n"))
	assert.Error(t, err)
}

func TestExportRoster_RoundTrip(t *testing.T) {
	players := []match.Player{
		{ID: "p1", Name: "Ada", Number: 7, PositionTags: []formation.PositionTag{formation.GK, formation.CB}, OnField: true},
		{ID: "p2", Name: "Ben"},
	}
	minutes := func(id string) float64 {
		if id == "p1" {
			return 125
		}
		return 0
	}

	var buf bytes.Buffer
	require.NoError(t, roster.ExportRoster(&buf, players, minutes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Number,Positions,OnField,Minutes", lines[0])
	assert.Equal(t, "Ada,7,GK|CB,yes,02:05", lines[1])
	assert.Equal(t, "Ben,,,no,00:00", lines[2], "a zero number exports as blank")

	reimported, err := roster.ImportRoster(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, reimported, 2)
	assert.Equal(t, players[0].PositionTags, reimported[0].PositionTags)
}

func TestExportMinutes(t *testing.T) {
	players := []match.Player{
		{ID: "p1", Name: "Ada", Number: 9, PositionTags: []formation.PositionTag{formation.ST}, OnField: true},
	}
	minutes := func(string) float64 { return 601.7 }

	var buf bytes.Buffer
	require.NoError(t, roster.ExportMinutes(&buf, players, minutes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,number,name,minutes,seconds,onField,positions", lines[0])
	assert.Equal(t, "p1,9,Ada,10:01,601,yes,ST", lines[1])
}

func TestExportSubs(t *testing.T) {
	subs := []match.SubEvent{
		{ID: "s1", TimestampMs: 1700000000000, PlayerInID: "p2", PlayerOutID: "p1", Note: "tired"},
		{ID: "s2", TimestampMs: 1700000060000, PlayerInID: "p3"},
	}

	var buf bytes.Buffer
	require.NoError(t, roster.ExportSubs(&buf, subs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,timestamp,playerInId,playerOutId,note", lines[0])
	assert.Equal(t, "s1,2023-11-14T22:13:20Z,p2,p1,tired", lines[1])
	assert.Equal(t, "s2,2023-11-14T22:14:20Z,p3,,", lines[2])
}
