package audioprofile

import (
	"fmt"
	"strings"
)

// Profile describes one supported format together with the sample rates and channel masks valid for it.
// An empty rate or channel set accepts any value for that dimension.
type Profile struct {
	format       Format
	rates        SampleRateSet
	channelMasks ChannelMaskSet

	dynamic bool // Added from a probe or a format-only declaration, removed by ClearDynamicProfiles.
}

// NewProfile creates a profile for format. The sets are copied and normalized.
func NewProfile(format Format, channelMasks ChannelMaskSet, rates SampleRateSet) *Profile {
	return &Profile{
		format:       format,
		rates:        NewSampleRateSet(rates...),
		channelMasks: NewChannelMaskSet(channelMasks...),
	}
}

// NewWildcardProfile creates a profile that declares format without constraining rates or channels.
func NewWildcardProfile(format Format) *Profile {
	return &Profile{format: format}
}

// Format returns the profile's format.
func (p *Profile) Format() Format {
	return p.format
}

// SampleRates returns a copy of the supported rates. Empty means any rate.
func (p *Profile) SampleRates() SampleRateSet {
	return p.rates.Clone()
}

// ChannelMasks returns a copy of the supported channel masks. Empty means any mask.
func (p *Profile) ChannelMasks() ChannelMaskSet {
	return p.channelMasks.Clone()
}

// HasValidFormat reports whether the profile names a concrete format.
func (p *Profile) HasValidFormat() bool {
	return p.format.IsValid()
}

// HasValidRates reports whether the profile declares explicit rates.
func (p *Profile) HasValidRates() bool {
	return len(p.rates) > 0
}

// HasValidChannels reports whether the profile declares explicit channel masks.
func (p *Profile) HasValidChannels() bool {
	return len(p.channelMasks) > 0
}

// IsDynamic reports whether the profile only exists because of a dynamic capability source.
func (p *Profile) IsDynamic() bool {
	return p.dynamic
}

// SupportsRate reports whether rate is declared, or any rate is accepted.
func (p *Profile) SupportsRate(rate uint32) bool {
	return len(p.rates) == 0 || p.rates.Contains(rate)
}

// SupportsChannelMask reports whether mask is declared, or any mask is accepted.
func (p *Profile) SupportsChannelMask(mask ChannelMask) bool {
	return len(p.channelMasks) == 0 || p.channelMasks.Contains(mask)
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	c := *p
	c.rates = p.rates.Clone()
	c.channelMasks = p.channelMasks.Clone()

	return &c
}

// String returns a human-readable representation of the profile.
func (p *Profile) String() string {
	if p == nil {
		return "<nil>"
	}

	var b strings.Builder

	b.WriteString(p.format.String())

	b.WriteString(" rates=")
	if len(p.rates) == 0 {
		b.WriteString("any")
	} else {
		b.WriteString(fmt.Sprint([]uint32(p.rates)))
	}

	b.WriteString(" channels=")
	if len(p.channelMasks) == 0 {
		b.WriteString("any")
	} else {
		names := make([]string, 0, len(p.channelMasks))
		for _, m := range p.channelMasks {
			names = append(names, m.String())
		}
		b.WriteString("[" + strings.Join(names, " ") + "]")
	}

	if p.dynamic {
		b.WriteString(" (dynamic)")
	}

	return b.String()
}

// merge unions the rates and channel masks of other into p.
// A static declaration of the format keeps the merged profile static.
func (p *Profile) merge(other *Profile) {
	p.rates.Union(other.rates)
	p.channelMasks.Union(other.channelMasks)
	p.dynamic = p.dynamic && other.dynamic
}
