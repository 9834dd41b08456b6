package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/model"
)

func seg(start, end string, seq int) model.SegmentInput {
	return model.SegmentInput{
		Sequence:         seq,
		StartStationCode: start,
		EndStationCode:   end,
		DistanceKm:       1.2,
		TravelTimeMin:    3,
	}
}

func stations(codes ...string) []model.Station {
	out := make([]model.Station, 0, len(codes))
	for _, c := range codes {
		out = append(out, model.Station{Code: c, Name: c})
	}
	return out
}

func TestSegmentEditor_NextStart(t *testing.T) {
	e := &SegmentEditor{}
	assert.Empty(t, e.NextStart())

	e.Segments = []model.SegmentInput{seg("A", "B", 1)}
	assert.Equal(t, "B", e.NextStart())

	e.Segments = append(e.Segments, seg("B", "C", 2))
	assert.Equal(t, "C", e.NextStart())
}

func TestSegmentEditor_StartLocked(t *testing.T) {
	e := &SegmentEditor{}
	assert.False(t, e.StartLocked(-1), "empty draft leaves the start editable")

	e.Segments = []model.SegmentInput{seg("A", "B", 1)}
	assert.True(t, e.StartLocked(-1), "appending to a chain locks the start")
	assert.False(t, e.StartLocked(0), "editing an existing segment does not")
}

func TestSegmentEditor_EndCandidates_ExcludesUsedEndpoints(t *testing.T) {
	e := &SegmentEditor{Segments: []model.SegmentInput{
		seg("A", "B", 1),
		seg("B", "C", 2),
		seg("C", "D", 3),
	}}

	all := stations("A", "B", "C", "D", "E", "F")
	candidates := e.EndCandidates(all, -1, "D")

	codes := make([]string, 0, len(candidates))
	for _, st := range candidates {
		codes = append(codes, st.Code)
	}
	assert.Equal(t, []string{"E", "F"}, codes)
}

func TestSegmentEditor_EndCandidates_EditingReleasesOwnEndpoints(t *testing.T) {
	e := &SegmentEditor{Segments: []model.SegmentInput{
		seg("A", "B", 1),
		seg("B", "C", 2),
	}}

	// Editing the last segment frees C but keeps A and B spent.
	candidates := e.EndCandidates(stations("A", "B", "C", "D"), 1, "B")
	codes := make([]string, 0, len(candidates))
	for _, st := range candidates {
		codes = append(codes, st.Code)
	}
	assert.Equal(t, []string{"C", "D"}, codes)
}

func TestSegmentEditor_Add(t *testing.T) {
	e := &SegmentEditor{}

	require.NoError(t, e.Add(seg("A", "B", 0)))
	require.NoError(t, e.Add(seg("B", "C", 0)))
	assert.Equal(t, 1, e.Segments[0].Sequence)
	assert.Equal(t, 2, e.Segments[1].Sequence)

	assert.Error(t, e.Add(seg("D", "E", 0)), "start must continue the chain")
	assert.Error(t, e.Add(seg("C", "C", 0)), "self loop")
	assert.Error(t, e.Add(seg("C", "A", 0)), "closing the loop back to the origin")
	assert.Error(t, e.Add(seg("C", "B", 0)), "revisiting an interior station")

	require.NoError(t, e.Add(seg("C", "D", 0)))
	assert.Len(t, e.Segments, 3)
}

func TestSegmentEditor_Update(t *testing.T) {
	e := &SegmentEditor{Segments: []model.SegmentInput{
		seg("A", "B", 1),
		seg("B", "C", 2),
	}}

	require.NoError(t, e.Update(1, seg("B", "D", 0)))
	assert.Equal(t, "D", e.Segments[1].EndStationCode)
	assert.Equal(t, 2, e.Segments[1].Sequence)

	// A chain-breaking edit is rejected and rolled back.
	require.Error(t, e.Update(1, seg("X", "Y", 0)))
	assert.Equal(t, "B", e.Segments[1].StartStationCode)
	assert.Equal(t, "D", e.Segments[1].EndStationCode)

	assert.Error(t, e.Update(9, seg("D", "E", 0)))
}

func TestSegmentEditor_RemoveRenumbers(t *testing.T) {
	e := &SegmentEditor{Segments: []model.SegmentInput{
		seg("A", "B", 1),
		seg("B", "C", 2),
		seg("C", "D", 3),
	}}

	require.NoError(t, e.Remove(0))
	require.Len(t, e.Segments, 2)
	assert.Equal(t, 1, e.Segments[0].Sequence)
	assert.Equal(t, 2, e.Segments[1].Sequence)
	assert.Equal(t, "B", e.Segments[0].StartStationCode)

	assert.Error(t, e.Remove(5))
	assert.Error(t, e.Remove(-1))
}

func TestValidateSegments(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Error(t, ValidateSegments(nil))
	})

	t.Run("valid chain", func(t *testing.T) {
		assert.NoError(t, ValidateSegments([]model.SegmentInput{
			seg("A", "B", 1),
			seg("B", "C", 2),
		}))
	})

	t.Run("gap in sequence", func(t *testing.T) {
		assert.Error(t, ValidateSegments([]model.SegmentInput{
			seg("A", "B", 1),
			seg("B", "C", 3),
		}))
	})

	t.Run("broken chain", func(t *testing.T) {
		assert.Error(t, ValidateSegments([]model.SegmentInput{
			seg("A", "B", 1),
			seg("C", "D", 2),
		}))
	})

	t.Run("closed loop", func(t *testing.T) {
		assert.Error(t, ValidateSegments([]model.SegmentInput{
			seg("A", "B", 1),
			seg("B", "C", 2),
			seg("C", "A", 3),
		}))
	})

	t.Run("self loop", func(t *testing.T) {
		assert.Error(t, ValidateSegments([]model.SegmentInput{
			seg("A", "A", 1),
		}))
	})

	t.Run("branch through interior", func(t *testing.T) {
		assert.Error(t, ValidateSegments([]model.SegmentInput{
			seg("A", "B", 1),
			seg("B", "C", 2),
			seg("C", "B", 3),
		}))
	})
}
