package usecase

import (
	"slices"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// SortOutputs returns a copy of outputs where, among outputs sharing the exact same milestone
// timestamp, spent outputs come before unspent ones. Every output stays in a slot previously
// held by an output of the same timestamp, so nothing moves across different timestamps and the
// relative order of everything else is preserved.
func SortOutputs(outputs []domain.ResolvedOutput) []domain.ResolvedOutput {
	sorted := slices.Clone(outputs)

	slots := make(map[uint32][]int)
	for i, out := range outputs {
		slots[out.MilestoneTimestamp] = append(slots[out.MilestoneTimestamp], i)
	}

	for _, positions := range slots {
		if len(positions) < 2 {
			continue
		}

		members := make([]domain.ResolvedOutput, 0, len(positions))
		for _, p := range positions {
			members = append(members, outputs[p])
		}
		slices.SortStableFunc(members, spentFirst)

		for i, p := range positions {
			sorted[p] = members[i]
		}
	}

	return sorted
}

func spentFirst(a, b domain.ResolvedOutput) int {
	switch {
	case a.IsSpent == b.IsSpent:
		return 0
	case a.IsSpent:
		return -1
	default:
		return 1
	}
}

// GroupTimestamp returns the latest milestone timestamp among the group's outputs.
// Inputs and outputs of one transaction can be booked at different milestones.
func GroupTimestamp(outputs []domain.ResolvedOutput) uint32 {
	var latest uint32
	for _, out := range outputs {
		latest = max(latest, out.MilestoneTimestamp)
	}
	return latest
}

// hasGenesisOutput reports whether any output was created by the genesis snapshot.
func hasGenesisOutput(outputs []domain.ResolvedOutput) bool {
	return slices.ContainsFunc(outputs, func(out domain.ResolvedOutput) bool {
		return out.IsGenesis()
	})
}
