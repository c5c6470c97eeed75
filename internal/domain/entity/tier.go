package entity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain"
)

const MaxTierNameLength = 50

// Tier is a named bundle of permissions: the thumbnail heights an account may
// derive, whether the original upload is kept, and whether expiring links may
// be issued. Tiers are immutable after creation.
type Tier struct {
	ID                uuid.UUID
	Name              string
	AllowOriginal     bool
	AllowExpiringLink bool
	Sizes             []ThumbnailSize
	CreatedAt         time.Time
}

func NewTier(name string, sizes []ThumbnailSize, allowOriginal, allowExpiringLink bool) (*Tier, error) {
	if strings.TrimSpace(name) == "" || len(name) > MaxTierNameLength {
		return nil, domain.ErrInvalidTierName
	}
	if len(sizes) == 0 {
		return nil, domain.ErrEmptySizeSet
	}

	// An expiring link is only meaningful over a stored original.
	if !allowOriginal {
		allowExpiringLink = false
	}

	deduped := dedupeSizes(sizes)
	sort.Slice(deduped, func(i, j int) bool { return deduped[i].Height > deduped[j].Height })

	return &Tier{
		ID:                uuid.New(),
		Name:              name,
		AllowOriginal:     allowOriginal,
		AllowExpiringLink: allowExpiringLink,
		Sizes:             deduped,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// BundleKey is a normalized representation of (size set, flags) used to detect
// duplicate permission bundles with a single unique index lookup.
func (t *Tier) BundleKey() string {
	heights := make([]int, 0, len(t.Sizes))
	for _, s := range t.Sizes {
		heights = append(heights, s.Height)
	}
	sort.Ints(heights)

	parts := make([]string, 0, len(heights))
	for _, h := range heights {
		parts = append(parts, strconv.Itoa(h))
	}

	return fmt.Sprintf("%s|original=%t|expiring=%t", strings.Join(parts, ","), t.AllowOriginal, t.AllowExpiringLink)
}

// Allows reports whether the tier permits thumbnails of the given height.
func (t *Tier) Allows(height int) bool {
	for _, s := range t.Sizes {
		if s.Height == height {
			return true
		}
	}
	return false
}

func dedupeSizes(sizes []ThumbnailSize) []ThumbnailSize {
	seen := make(map[int]struct{}, len(sizes))
	result := make([]ThumbnailSize, 0, len(sizes))
	for _, s := range sizes {
		if _, ok := seen[s.Height]; ok {
			continue
		}
		seen[s.Height] = struct{}{}
		result = append(result, s)
	}
	return result
}
