package audioprofile

import (
	"fmt"
	"slices"
)

// Capabilities is the result of querying a device for what it supports, as reported by a hardware
// abstraction layer: a set of formats, and a rate and channel count interval shared by all of them.
type Capabilities interface {
	// Formats returns the supported formats.
	Formats() []Format
	// RateRange returns the inclusive interval of supported sample rates in Hz.
	RateRange() (minRate, maxRate uint32)
	// ChannelRange returns the inclusive interval of supported channel counts.
	ChannelRange() (minChannels, maxChannels uint32)
}

// RangeCapabilities is a plain Capabilities value.
type RangeCapabilities struct {
	FormatList  []Format
	MinRate     uint32
	MaxRate     uint32
	MinChannels uint32
	MaxChannels uint32
}

// Formats returns the supported formats.
func (c RangeCapabilities) Formats() []Format {
	return c.FormatList
}

// RateRange returns the inclusive interval of supported sample rates in Hz.
func (c RangeCapabilities) RateRange() (uint32, uint32) {
	return c.MinRate, c.MaxRate
}

// ChannelRange returns the inclusive interval of supported channel counts.
func (c RangeCapabilities) ChannelRange() (uint32, uint32) {
	return c.MinChannels, c.MaxChannels
}

// ProfilesFromCapabilities expands probed capabilities into one profile per format.
// The rates are the StandardSampleRates inside the rate interval, the channel masks are the conventional
// layouts for each count inside the channel interval. An open interval (max of 0 or max of ^uint32(0))
// leaves that dimension unconstrained.
func ProfilesFromCapabilities(caps Capabilities) ([]*Profile, error) {
	if caps == nil {
		return nil, fmt.Errorf("nil capabilities: %w", ErrBadValue)
	}

	rates, err := ratesInRange(caps.RateRange())
	if err != nil {
		return nil, err
	}

	masks, err := masksInRange(caps.ChannelRange())
	if err != nil {
		return nil, err
	}

	var profiles []*Profile
	for _, f := range caps.Formats() {
		if !f.IsValid() || slices.ContainsFunc(profiles, func(p *Profile) bool { return p.format == f }) {
			continue
		}

		profiles = append(profiles, NewProfile(f, masks, rates))
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("capabilities declare no valid format: %w", ErrBadValue)
	}

	return profiles, nil
}

// AddProbedProfiles adds the profiles described by caps to the store as dynamic profiles.
func AddProbedProfiles(store *ProfileStore, caps Capabilities) error {
	profiles, err := ProfilesFromCapabilities(caps)
	if err != nil {
		return err
	}

	for _, p := range profiles {
		if _, err := store.AddDynamicProfileAndSort(p); err != nil {
			return err
		}
	}

	return nil
}

func isOpenInterval(maxVal uint32) bool {
	return maxVal == 0 || maxVal == ^uint32(0)
}

func ratesInRange(minRate, maxRate uint32) (SampleRateSet, error) {
	if isOpenInterval(maxRate) {
		return nil, nil
	}

	if minRate > maxRate {
		return nil, fmt.Errorf("invalid rate range %d-%d: %w", minRate, maxRate, ErrBadValue)
	}

	var rates SampleRateSet
	for _, r := range StandardSampleRates {
		if r >= minRate && r <= maxRate {
			rates = append(rates, r)
		}
	}

	// A device with a single non-standard rate still declares that rate.
	if len(rates) == 0 && minRate == maxRate {
		rates = SampleRateSet{minRate}
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("rate range %d-%d contains no standard rate: %w", minRate, maxRate, ErrBadValue)
	}

	return rates, nil
}

func masksInRange(minChannels, maxChannels uint32) (ChannelMaskSet, error) {
	if isOpenInterval(maxChannels) {
		return nil, nil
	}

	minChannels = max(minChannels, 1)
	if minChannels > maxChannels || maxChannels > channelCountMax {
		return nil, fmt.Errorf("invalid channel range %d-%d: %w", minChannels, maxChannels, ErrBadValue)
	}

	masks := make(ChannelMaskSet, 0, maxChannels-minChannels+1)
	for n := minChannels; n <= maxChannels; n++ {
		masks = append(masks, ChannelMaskForCount(n))
	}

	return masks, nil
}
