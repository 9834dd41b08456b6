package helper

import (
	"errors"
	"fmt"

	"metroll_cms/constants"
	"metroll_cms/model"
)

// SegmentEditor assembles the ordered segment list of one metro line
// draft. Order is insertion order; sequence numbers are reassigned to stay
// contiguous from 1 after every change. Continuity is enforced at entry
// time: once a segment exists, the next segment's start is locked to the
// previous end, so the chain can never branch.
type SegmentEditor struct {
	Segments []model.SegmentInput
}

// NextStart is the start station a newly appended segment must use: the
// end of the last segment, or free choice on an empty draft.
func (e *SegmentEditor) NextStart() string {
	if len(e.Segments) == 0 {
		return ""
	}
	return e.Segments[len(e.Segments)-1].EndStationCode
}

// StartLocked reports whether the start-station field is non-editable:
// locked whenever at least one prior segment exists and the operator is
// appending rather than editing an existing entry.
func (e *SegmentEditor) StartLocked(editingIndex int) bool {
	return len(e.Segments) > 0 && editingIndex < 0
}

// usedEndpoints collects every station code used as an endpoint by any
// segment other than the one at skipIndex (pass -1 to skip none).
func (e *SegmentEditor) usedEndpoints(skipIndex int) map[string]bool {
	used := make(map[string]bool)
	for i, seg := range e.Segments {
		if i == skipIndex {
			continue
		}
		used[seg.StartStationCode] = true
		used[seg.EndStationCode] = true
	}
	return used
}

// EndCandidates filters the station list down to legal end stations for
// the segment being added (editingIndex -1) or edited: the chosen start is
// excluded, and so is every endpoint already used by any other segment.
// A line therefore cannot revisit a station, which also rules out closed
// loops back to its own start.
func (e *SegmentEditor) EndCandidates(stations []model.Station, editingIndex int, start string) []model.Station {
	used := e.usedEndpoints(editingIndex)
	candidates := make([]model.Station, 0, len(stations))
	for _, st := range stations {
		if st.Code == start || used[st.Code] {
			continue
		}
		candidates = append(candidates, st)
	}
	return candidates
}

// Add appends a segment. When the start is locked it must equal the
// previous segment's end; the end must not revisit a used endpoint. The
// sequence number is assigned here, not by the caller.
func (e *SegmentEditor) Add(seg model.SegmentInput) error {
	if want := e.NextStart(); want != "" && seg.StartStationCode != want {
		return fmt.Errorf("%s: segment must start at %s", constants.SEGMENT_CHAIN_BROKEN, want)
	}
	if seg.StartStationCode == seg.EndStationCode {
		return errors.New(constants.SEGMENT_STATION_REUSE)
	}
	used := e.usedEndpoints(-1)
	// The shared junction with the previous segment is the one legal reuse.
	delete(used, e.NextStart())
	if used[seg.StartStationCode] || used[seg.EndStationCode] {
		return errors.New(constants.SEGMENT_STATION_REUSE)
	}
	seg.Sequence = len(e.Segments) + 1
	e.Segments = append(e.Segments, seg)
	return nil
}

// Update replaces the segment at index and revalidates the whole chain;
// on a validation failure the previous entry is restored.
func (e *SegmentEditor) Update(index int, seg model.SegmentInput) error {
	if index < 0 || index >= len(e.Segments) {
		return fmt.Errorf("segment index %d out of range", index)
	}
	prev := e.Segments[index]
	seg.Sequence = index + 1
	e.Segments[index] = seg
	if err := ValidateSegments(e.Segments); err != nil {
		e.Segments[index] = prev
		return err
	}
	return nil
}

// Remove deletes the segment at index and renumbers the rest so sequences
// stay exactly 1..n with no gaps.
func (e *SegmentEditor) Remove(index int) error {
	if index < 0 || index >= len(e.Segments) {
		return fmt.Errorf("segment index %d out of range", index)
	}
	e.Segments = append(e.Segments[:index], e.Segments[index+1:]...)
	e.renumber()
	return nil
}

func (e *SegmentEditor) renumber() {
	for i := range e.Segments {
		e.Segments[i].Sequence = i + 1
	}
}

// Validate checks the full draft before submission.
func (e *SegmentEditor) Validate() error {
	return ValidateSegments(e.Segments)
}

// ValidateSegments enforces the path invariants on a complete segment
// list: non-empty, contiguous 1-based sequences, each segment starting at
// the previous end, and no station appearing outside the one junction the
// chain requires.
func ValidateSegments(segments []model.SegmentInput) error {
	if len(segments) == 0 {
		return errors.New(constants.LINE_NEEDS_SEGMENTS)
	}
	seen := make(map[string]int)
	for i, seg := range segments {
		if seg.Sequence != i+1 {
			return fmt.Errorf("segment %d has sequence %d, want %d", i, seg.Sequence, i+1)
		}
		if seg.StartStationCode == seg.EndStationCode {
			return errors.New(constants.SEGMENT_STATION_REUSE)
		}
		if i > 0 && seg.StartStationCode != segments[i-1].EndStationCode {
			return errors.New(constants.SEGMENT_CHAIN_BROKEN)
		}
		seen[seg.StartStationCode]++
		seen[seg.EndStationCode]++
	}
	// On a valid open chain only interior junctions appear twice; anything
	// above that (or a repeated terminal) means a cycle or branch.
	for code, count := range seen {
		limit := 2
		if code == segments[0].StartStationCode || code == segments[len(segments)-1].EndStationCode {
			limit = 1
		}
		if count > limit {
			return errors.New(constants.SEGMENT_STATION_REUSE)
		}
	}
	return nil
}
