package course

import (
	"fmt"

	"github.com/puttmatch/backend/internal/game"
)

// Deterministic hole selection. Server and client compute the per-match
// hole sequence independently from (matchId, holeNumber, manifest) alone —
// no randomness, no clock reads, no extra state on the wire. The hash below
// is the sole fairness mechanism, so it must stay bit-exact with the client.

const (
	// TierOvertime is where every hole past the regulation five lands.
	TierOvertime = 6

	// DefaultMaxHoles bounds a generated match sequence.
	DefaultMaxHoles = 15
)

// fnv1a32 is the 32-bit FNV-1a hash: XOR each byte into the state, then
// multiply by the prime. The exact offset basis and prime are part of the
// client contract.
func fnv1a32(s string) uint32 {
	var h uint32 = 0x811c9dc5
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 0x01000193
	}
	return h
}

// TierForHoleNumber maps holes 1-5 to tiers 1-5; everything past that is
// overtime.
func TierForHoleNumber(n int) int {
	if n >= TierOvertime {
		return TierOvertime
	}
	return n
}

// SelectHoleID picks the hole a given match plays at a given hole number.
// The tier's ids are indexed in ascending order so every loader of the same
// pack agrees on position.
func (l *Library) SelectHoleID(tier int, matchID string, holeNumber int) (string, error) {
	ids := l.byTier[tier]
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: tier %d (match %s, hole %d)", ErrEmptyTier, tier, matchID, holeNumber)
	}
	h := fnv1a32(fmt.Sprintf("%s:%d", matchID, holeNumber))
	return ids[int(h%uint32(len(ids)))], nil
}

// HoleForMatch resolves the full hole data for (matchId, holeNumber)
// without materializing the sequence.
func (l *Library) HoleForMatch(matchID string, holeNumber int) (*game.HoleData, error) {
	if holeNumber < 1 {
		return nil, fmt.Errorf("hole number must be >= 1, got %d", holeNumber)
	}
	id, err := l.SelectHoleID(TierForHoleNumber(holeNumber), matchID, holeNumber)
	if err != nil {
		return nil, err
	}
	return l.GetHole(id)
}

// GenerateMatchSequence builds the ordered hole list for a match. Pure in
// (matchId, manifest): both sides can compute it concurrently with no
// coordination.
func (l *Library) GenerateMatchSequence(matchID string, maxHoles int) ([]string, error) {
	if maxHoles <= 0 {
		maxHoles = DefaultMaxHoles
	}
	seq := make([]string, 0, maxHoles)
	for n := 1; n <= maxHoles; n++ {
		id, err := l.SelectHoleID(TierForHoleNumber(n), matchID, n)
		if err != nil {
			return nil, err
		}
		seq = append(seq, id)
	}
	return seq, nil
}
