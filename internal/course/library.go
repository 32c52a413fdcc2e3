package course

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/puttmatch/backend/internal/game"
)

// ManifestEntry names one hole file the pack must contain.
type ManifestEntry struct {
	HoleID string `json:"holeId" validate:"required"`
	Tier   int    `json:"tier" validate:"required,gte=1,lte=6"`
	File   string `json:"file" validate:"required"`
}

// Manifest is the single source of truth for which holes exist.
type Manifest struct {
	Version     int             `json:"version" validate:"required,gte=1"`
	GeneratedAt string          `json:"generatedAt"`
	Count       int             `json:"count" validate:"required,gte=1"`
	Holes       []ManifestEntry `json:"holes" validate:"required,dive"`
}

// Library is the validated, indexed course pack. It is immutable after
// loading and safe for concurrent reads; there is no partially-loaded state.
type Library struct {
	manifest *Manifest
	holes    map[string]*game.HoleData
	byTier   map[int][]string // hole ids, sorted ascending
}

// LoadFromDisk reads manifest.json plus every referenced hole file from
// coursesDir. Any schema violation, manifest/file disagreement or count
// mismatch fails the whole load with every problem reported.
func LoadFromDisk(coursesDir string) (*Library, error) {
	raw, err := os.ReadFile(filepath.Join(coursesDir, "manifest.json"))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return build(raw, func(e ManifestEntry) ([]byte, error) {
		return os.ReadFile(filepath.Join(coursesDir, e.File))
	})
}

// LoadFromObjects builds a library from pre-parsed JSON blobs, keyed by
// holeId. Bundled clients use this; it funnels into the same validation
// and indexing as disk loading.
func LoadFromObjects(manifestRaw []byte, holeRaw map[string][]byte) (*Library, error) {
	return build(manifestRaw, func(e ManifestEntry) ([]byte, error) {
		raw, ok := holeRaw[e.HoleID]
		if !ok {
			return nil, fmt.Errorf("no data for holeId %q", e.HoleID)
		}
		return raw, nil
	})
}

func build(manifestRaw []byte, fetch func(ManifestEntry) ([]byte, error)) (*Library, error) {
	lerr := &LoadError{}

	manifest, msgs := ValidateManifest(manifestRaw)
	if msgs != nil {
		lerr.Validation = append(lerr.Validation, msgs...)
		return nil, lerr
	}

	holes := make(map[string]*game.HoleData, len(manifest.Holes))
	byTier := make(map[int][]string)

	for _, entry := range manifest.Holes {
		raw, err := fetch(entry)
		if err != nil {
			lerr.Consistency = append(lerr.Consistency,
				fmt.Sprintf("%s: referenced file missing: %v", entry.HoleID, err))
			continue
		}

		hole, msgs := ValidateHole(raw)
		if msgs != nil {
			lerr.Validation = append(lerr.Validation, msgs...)
			continue
		}

		if hole.HoleID != entry.HoleID {
			lerr.Consistency = append(lerr.Consistency,
				fmt.Sprintf("%s: file %s embeds holeId %q", entry.HoleID, entry.File, hole.HoleID))
			continue
		}
		if hole.Tier != entry.Tier {
			lerr.Consistency = append(lerr.Consistency,
				fmt.Sprintf("%s: manifest says tier %d, file says tier %d", entry.HoleID, entry.Tier, hole.Tier))
			continue
		}

		holes[hole.HoleID] = hole
		byTier[hole.Tier] = append(byTier[hole.Tier], hole.HoleID)
	}

	if len(holes) != manifest.Count {
		lerr.Consistency = append(lerr.Consistency,
			fmt.Sprintf("manifest declares %d holes, %d loaded", manifest.Count, len(holes)))
	}

	if !lerr.empty() {
		return nil, lerr
	}

	// Selection indexes by position in the sorted id list; the order must
	// be identical everywhere the pack is loaded.
	for tier := range byTier {
		sort.Strings(byTier[tier])
	}

	log.Printf("[COURSES] Loaded %d holes across %d tiers", len(holes), len(byTier))
	return &Library{manifest: manifest, holes: holes, byTier: byTier}, nil
}

// GetHole returns a hole by id.
func (l *Library) GetHole(id string) (*game.HoleData, error) {
	hole, ok := l.holes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHole, id)
	}
	return hole, nil
}

// HolesByTier returns the tier's hole ids in ascending order.
func (l *Library) HolesByTier(tier int) []string {
	return l.byTier[tier]
}

// AllHoleIDs returns every loaded hole id in ascending order.
func (l *Library) AllHoleIDs() []string {
	ids := make([]string, 0, len(l.holes))
	for id := range l.holes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of loaded holes.
func (l *Library) Count() int {
	return len(l.holes)
}

// Manifest returns the validated manifest the library was built from.
func (l *Library) Manifest() *Manifest {
	return l.manifest
}
