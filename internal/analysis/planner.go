package analysis

import (
	"sort"

	"github.com/samber/lo"

	"shortspro/internal/types"
)

const (
	maxClipCount   = 8
	minStartOffset = 10
	shortVideoMax  = 60
)

// Offsets used verbatim for videos of a minute or less.
var shortVideoOffsets = []int{10, 20, 30, 40}

// TargetClipCount derives how many candidates to plan from the video length.
// Monotonic non-decreasing in duration, capped at maxClipCount.
func TargetClipCount(durationSeconds int) int {
	if durationSeconds <= 0 {
		return 0
	}
	count := durationSeconds/120 + 1
	if count > maxClipCount {
		count = maxClipCount
	}
	return count
}

// PlanTimestamps computes up to targetCount non-overlapping candidate start
// offsets. Candidates are spread evenly across [startBuffer, endBuffer] where
// startBuffer is 5% of the duration (floored at minStartOffset) and endBuffer
// is 90%; the endpoint is exclusive. Any offset that would push a clip past
// the end of the video is clamped to max(10, duration-30).
func PlanTimestamps(durationSeconds, targetCount int) []int {
	if durationSeconds <= 0 || targetCount <= 0 {
		return nil
	}

	if durationSeconds <= shortVideoMax {
		offsets := shortVideoOffsets
		if targetCount < len(offsets) {
			offsets = offsets[:targetCount]
		}
		return clampOffsets(offsets, durationSeconds)
	}

	startBuffer := durationSeconds * 5 / 100
	if startBuffer < minStartOffset {
		startBuffer = minStartOffset
	}
	endBuffer := durationSeconds * 90 / 100
	if endBuffer <= startBuffer {
		endBuffer = startBuffer
	}

	offsets := make([]int, 0, targetCount)
	for i := 0; i < targetCount; i++ {
		offsets = append(offsets, startBuffer+i*(endBuffer-startBuffer)/targetCount)
	}
	return clampOffsets(offsets, durationSeconds)
}

func clampOffsets(offsets []int, durationSeconds int) []int {
	clamped := lo.Map(offsets, func(offset int, _ int) int {
		if offset+types.ClipDurationSeconds > durationSeconds {
			offset = durationSeconds - 2*types.ClipDurationSeconds
			if offset < minStartOffset {
				offset = minStartOffset
			}
		}
		return offset
	})
	// Clamping can collapse neighbors onto the same offset or push a late
	// offset before an earlier one; candidates stay distinct and ordered.
	clamped = lo.Uniq(clamped)
	sort.Ints(clamped)
	return clamped
}
