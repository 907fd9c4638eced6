package audioprofile

import (
	"cmp"
	"slices"
)

// StandardSampleRates lists the rates offered for a device that only reports a rate range,
// and for profiles that accept any rate.
var StandardSampleRates = SampleRateSet{
	8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000, 64000, 88200, 96000, 128000, 176400, 192000,
}

// SampleRateSet is an ascending, duplicate-free set of sample rates in Hz.
// An empty set on a Profile means any rate is accepted.
type SampleRateSet []uint32

// NewSampleRateSet builds a set from arbitrary rates. Zero rates are dropped.
func NewSampleRateSet(rates ...uint32) SampleRateSet {
	return SampleRateSet(newOrderedSet(rates, func(r uint32) bool { return r != 0 }))
}

// Contains reports whether rate is in the set.
func (s SampleRateSet) Contains(rate uint32) bool {
	_, found := slices.BinarySearch(s, rate)

	return found
}

// Add inserts rate, keeping the set ordered.
func (s *SampleRateSet) Add(rate uint32) {
	if rate == 0 {
		return
	}

	*s = orderedInsert(*s, rate)
}

// Union adds every rate of other to the set.
func (s *SampleRateSet) Union(other SampleRateSet) {
	for _, r := range other {
		s.Add(r)
	}
}

// Intersect returns the rates present in both sets.
func (s SampleRateSet) Intersect(other SampleRateSet) SampleRateSet {
	return orderedIntersect(s, other)
}

// Min returns the lowest rate, or 0 for an empty set.
func (s SampleRateSet) Min() uint32 {
	if len(s) == 0 {
		return 0
	}

	return s[0]
}

// Max returns the highest rate, or 0 for an empty set.
func (s SampleRateSet) Max() uint32 {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1]
}

// Clone returns a copy that shares no storage with s.
func (s SampleRateSet) Clone() SampleRateSet {
	if len(s) == 0 {
		return nil
	}

	return slices.Clone(s)
}

// ceil returns the smallest rate >= rate.
func (s SampleRateSet) ceil(rate uint32) (uint32, bool) {
	i, _ := slices.BinarySearch(s, rate)
	if i == len(s) {
		return 0, false
	}

	return s[i], true
}

// floor returns the largest rate <= rate.
func (s SampleRateSet) floor(rate uint32) (uint32, bool) {
	i, found := slices.BinarySearch(s, rate)
	if found {
		return s[i], true
	}

	if i == 0 {
		return 0, false
	}

	return s[i-1], true
}

// ChannelMaskSet is an ascending, duplicate-free set of channel masks.
// An empty set on a Profile means any channel mask is accepted.
type ChannelMaskSet []ChannelMask

// NewChannelMaskSet builds a set from arbitrary masks.
func NewChannelMaskSet(masks ...ChannelMask) ChannelMaskSet {
	return ChannelMaskSet(newOrderedSet(masks, nil))
}

// Contains reports whether mask is in the set.
func (s ChannelMaskSet) Contains(mask ChannelMask) bool {
	_, found := slices.BinarySearch(s, mask)

	return found
}

// Add inserts mask, keeping the set ordered.
func (s *ChannelMaskSet) Add(mask ChannelMask) {
	*s = orderedInsert(*s, mask)
}

// Union adds every mask of other to the set.
func (s *ChannelMaskSet) Union(other ChannelMaskSet) {
	for _, m := range other {
		s.Add(m)
	}
}

// Intersect returns the masks present in both sets.
func (s ChannelMaskSet) Intersect(other ChannelMaskSet) ChannelMaskSet {
	return orderedIntersect(s, other)
}

// Clone returns a copy that shares no storage with s.
func (s ChannelMaskSet) Clone() ChannelMaskSet {
	if len(s) == 0 {
		return nil
	}

	return slices.Clone(s)
}

func newOrderedSet[T cmp.Ordered](values []T, keep func(T) bool) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}

	if len(out) == 0 {
		return nil
	}

	slices.Sort(out)

	return slices.Compact(out)
}

func orderedInsert[T cmp.Ordered](set []T, v T) []T {
	i, found := slices.BinarySearch(set, v)
	if found {
		return set
	}

	return slices.Insert(set, i, v)
}

func orderedIntersect[S ~[]T, T cmp.Ordered](a, b S) S {
	out := make(S, 0, min(len(a), len(b)))
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
