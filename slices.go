// SPDX-License-Identifier: MIT

// Package matrix: the 1-indexed, inclusive-stop span translation layer.
//
// Every subscripting surface of this package (block access, row/column
// slices, ranged deletion) speaks in 1-based spans whose stop index is
// included in the selection, the way the original notation "start:stop:step"
// reads. This file converts such spans into 0-based, half-open, step-aware
// ranges against a sequence of known length, and provides the composition
// algebra (Len / Index / Compose) that lets a slice-of-a-slice be re-based
// onto the original sequence without ever re-deriving it from the matrix.
//
// All functions here are pure: no side effects, no allocation beyond the
// returned value. They sit on the hot path of every access.
package matrix

import "fmt"

// Span is a 1-based, stop-inclusive selection over rows or columns.
// A zero field means "omitted": Start defaults to 1, Stop to the sequence
// length, Step to 1. Negative or explicit-zero components are malformed.
type Span struct {
	Start int // first selected 1-based index; 0 = from the beginning
	Stop  int // last selected 1-based index (inclusive); 0 = to the end
	Step  int // stride between selections; 0 = 1
}

// All is the span selecting every index of the sequence.
var All = Span{}

// String renders the span in colon notation, omitted fields left blank.
func (s Span) String() string {
	step := ""
	if s.Step != 0 {
		step = fmt.Sprintf(":%d", s.Step)
	}

	return fmt.Sprintf("%s:%s%s", spanField(s.Start), spanField(s.Stop), step)
}

// spanField renders one span component, blank when omitted.
func spanField(v int) string {
	if v == 0 {
		return ""
	}

	return fmt.Sprintf("%d", v)
}

// Range is an adjusted span: 0-based, half-open, with Step >= 1.
// Produced exclusively by AdjustSpan and Compose; fields are safe to read.
type Range struct {
	Start int // first selected 0-based index
	Stop  int // one past the last selected index
	Step  int // stride, always >= 1
}

// AdjustSpan converts a 1-based, stop-inclusive span into a 0-based,
// half-open Range against a sequence of the given length.
//
// Implementation:
//   - Stage 1 (Validate): every given component must be >= 1 (ErrBadSpan);
//     with Stop omitted, a given Start must not exceed length; with both
//     given, Start must not exceed Stop.
//   - Stage 2 (Resolve): fill defaults, clamp Start/Stop into the sequence.
//   - Stage 3 (Finalize): the inclusive 1-based stop equals the exclusive
//     0-based stop, so only Start shifts down by one.
//
// Errors: ErrBadSpan on any malformed component.
// Complexity: O(1), no allocation.
func AdjustSpan(s Span, length int) (Range, error) {
	// Validate every given component is at least 1.
	if s.Start < 0 || s.Stop < 0 || s.Step < 0 {
		return Range{}, fmt.Errorf("%q: 'start', 'stop' or 'step' is below 1: %w", s.String(), ErrBadSpan)
	}
	if s.Stop == 0 {
		// 'stop' omitted: a given 'start' must stay within the sequence.
		if s.Start > length {
			return Range{}, fmt.Errorf("%q: 'start' is out of range (max: %d): %w", s.String(), length, ErrBadSpan)
		}
	} else if s.Start > s.Stop {
		return Range{}, fmt.Errorf("%q: 'start' > 'stop': %w", s.String(), ErrBadSpan)
	}

	// Resolve defaults.
	start, stop, step := s.Start, s.Stop, s.Step
	if start == 0 {
		start = 1
	}
	if stop == 0 || stop > length {
		stop = length
	}
	if step == 0 {
		step = 1
	}
	// Clamp a start that overshoots (possible when 'stop' was given).
	if start > length {
		start = length
	}

	// Inclusive 1-based stop == exclusive 0-based stop.
	return Range{Start: start - 1, Stop: stop, Step: step}, nil
}

// Len returns the number of indices the range selects.
// Complexity: O(1).
func (r Range) Len() int {
	span := r.Stop - r.Start
	if span <= 0 {
		return 0
	}

	return (span + r.Step - 1) / r.Step // ceil(span/step)
}

// Index maps index i of the produced subsequence back onto the original
// sequence. i MUST be within [0, Len()); callers bound-check first.
// Complexity: O(1).
func (r Range) Index(i int) int {
	return r.Start + i*r.Step
}

// Compose re-bases sub (a range adjusted against the subsequence selected
// by r) onto the sequence r itself was adjusted against. This is what keeps
// slicing a previously-sliced view correct without consulting the matrix.
// Complexity: O(1).
func (r Range) Compose(sub Range) Range {
	return Range{
		Start: r.Index(sub.Start),
		Stop:  r.Index(sub.Stop-1) + 1,
		Step:  r.Step * sub.Step,
	}
}

// String renders the adjusted range back in 1-based colon notation.
func (r Range) String() string {
	if r.Step > 1 {
		return fmt.Sprintf("%d:%d:%d", r.Start+1, r.Stop, r.Step)
	}

	return fmt.Sprintf("%d:%d", r.Start+1, r.Stop)
}
