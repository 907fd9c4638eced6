package audioprofile

import (
	"fmt"
	"slices"
	"strings"
)

// ProfileStore is an ordered collection of profiles, unique by format.
// Insertions keep the store in canonical order so that the first matching profile is the preferred one.
//
// A ProfileStore has no internal locking. Any number of queries may run against a store that is not being
// modified; modifications need exclusive access.
type ProfileStore struct {
	profiles []*Profile
}

// NewProfileStore creates a store holding copies of the given profiles, merged by format and sorted.
func NewProfileStore(profiles ...*Profile) *ProfileStore {
	s := &ProfileStore{}
	for _, p := range profiles {
		s.mergeOrAppend(p)
	}
	s.Sort()

	return s
}

// Len returns the number of profiles in the store.
func (s *ProfileStore) Len() int {
	if s == nil {
		return 0
	}

	return len(s.profiles)
}

// IsEmpty reports whether the store holds no profile.
func (s *ProfileStore) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the profile at index i. The profile must not be modified.
func (s *ProfileStore) At(i int) *Profile {
	return s.profiles[i]
}

// Profiles returns copies of the profiles in store order.
func (s *ProfileStore) Profiles() []*Profile {
	if s.Len() == 0 {
		return nil
	}

	out := make([]*Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.Clone())
	}

	return out
}

// Formats returns the formats of the store in store order.
func (s *ProfileStore) Formats() []Format {
	if s.Len() == 0 {
		return nil
	}

	out := make([]Format, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.format)
	}

	return out
}

// IndexOf returns the index of the profile for format, or -1.
func (s *ProfileStore) IndexOf(format Format) int {
	if s == nil {
		return -1
	}

	return slices.IndexFunc(s.profiles, func(p *Profile) bool { return p.format == format })
}

// ProfileFor returns the profile declared for format, or nil. The profile must not be modified.
func (s *ProfileStore) ProfileFor(format Format) *Profile {
	i := s.IndexOf(format)
	if i < 0 {
		return nil
	}

	return s.profiles[i]
}

// Sort re-establishes the canonical order: linear PCM formats first, by descending precision,
// then everything else. Ties keep their relative order.
func (s *ProfileStore) Sort() {
	slices.SortStableFunc(s.profiles, func(a, b *Profile) int {
		return compareFormats(a.format, b.format)
	})
}

// AddAndSort inserts a copy of p. If the store already has a profile for the same format, the rates and
// channel masks of p are merged into it instead. Returns the index of the resulting entry after sorting,
// or -1 for a nil profile.
func (s *ProfileStore) AddAndSort(p *Profile) int {
	if p == nil {
		return -1
	}

	s.mergeOrAppend(p)
	s.Sort()

	return s.IndexOf(p.format)
}

// AddProfilesForFormats adds a wildcard profile for every format, for devices that only declare which
// formats they support until their capabilities are queried.
func (s *ProfileStore) AddProfilesForFormats(formats []Format) {
	for _, f := range formats {
		p := NewWildcardProfile(f)
		p.dynamic = true
		s.AddAndSort(p)
	}
}

// AddDynamicProfileAndSort inserts a profile obtained by probing a device. The merge rules are those of
// AddAndSort; the profile is marked dynamic so it can be dropped with ClearDynamicProfiles.
func (s *ProfileStore) AddDynamicProfileAndSort(p *Profile) (int, error) {
	if p == nil || !p.HasValidFormat() {
		return -1, fmt.Errorf("dynamic profile without valid format: %w", ErrBadValue)
	}

	c := p.Clone()
	c.dynamic = true

	return s.AddAndSort(c), nil
}

// AppendProfiles merges every profile of other into the store, sorting once at the end.
func (s *ProfileStore) AppendProfiles(other *ProfileStore) {
	if other.Len() == 0 {
		return
	}

	for _, p := range other.profiles {
		s.mergeOrAppend(p)
	}

	s.Sort()
}

// Append adds a copy of p at the end of the store without merging or sorting.
func (s *ProfileStore) Append(p *Profile) {
	if p == nil {
		return
	}

	s.profiles = append(s.profiles, p.Clone())
}

// HasDynamicProfile reports whether any profile came from a dynamic capability source.
func (s *ProfileStore) HasDynamicProfile() bool {
	if s == nil {
		return false
	}

	return slices.ContainsFunc(s.profiles, (*Profile).IsDynamic)
}

// ClearDynamicProfiles removes the profiles that only exist because of a dynamic capability source,
// e.g. when the device they were probed from is disconnected.
func (s *ProfileStore) ClearDynamicProfiles() {
	s.profiles = slices.DeleteFunc(s.profiles, (*Profile).IsDynamic)
}

// Clone returns a deep copy of the store.
func (s *ProfileStore) Clone() *ProfileStore {
	return &ProfileStore{profiles: s.Profiles()}
}

// String returns a human-readable representation of the store, one profile per line.
func (s *ProfileStore) String() string {
	if s.Len() == 0 {
		return "<empty>"
	}

	var b strings.Builder
	for i, p := range s.profiles {
		b.WriteString(fmt.Sprintf("%2d: %s\n", i, p))
	}

	return b.String()
}

func (s *ProfileStore) mergeOrAppend(p *Profile) {
	if p == nil {
		return
	}

	if i := s.IndexOf(p.format); i >= 0 {
		s.profiles[i].merge(p)

		return
	}

	s.profiles = append(s.profiles, p.Clone())
}

// compareFormats orders linear PCM before other formats and higher precision before lower.
func compareFormats(a, b Format) int {
	aLinear, bLinear := FormatIsLinearPCM(a), FormatIsLinearPCM(b)

	switch {
	case aLinear && !bLinear:
		return -1
	case !aLinear && bLinear:
		return 1
	case !aLinear:
		return 0
	}

	bitsA, bitsB := FormatToBits(a), FormatToBits(b)

	switch {
	case bitsA > bitsB:
		return -1
	case bitsA < bitsB:
		return 1
	default:
		return 0
	}
}
