package audioprofile

import (
	"fmt"
)

// FindBestMatchingOutputConfig picks the configuration an output should use to carry content described by
// input, given the output's own capabilities.
//
// The format is chosen first: the first entry of preferredFormats declared by both stores. The channel mask
// comes next: the first entry of preferredChannelMasks accepted by both profiles of that format. The rate is
// the highest (preferHigherSamplingRates) or lowest rate accepted by both profiles. Profiles with empty sets
// accept any value; when both accept any rate the choice is made from StandardSampleRates.
//
// On failure the returned Config is zero and the error wraps ErrBadValue.
func FindBestMatchingOutputConfig(input, output *ProfileStore, preferredFormats []Format,
	preferredChannelMasks []ChannelMask, preferHigherSamplingRates bool) (Config, error) {
	inProfile, outProfile, ok := firstSharedFormat(input, output, preferredFormats)
	if !ok {
		return Config{}, fmt.Errorf("no preferred format among %v is supported by both sides: %w", preferredFormats, ErrBadValue)
	}

	mask, ok := firstSharedChannelMask(inProfile, outProfile, preferredChannelMasks)
	if !ok {
		return Config{}, fmt.Errorf("no preferred channel mask for %s is supported by both sides: %w", inProfile.format, ErrBadValue)
	}

	rates := sharedSampleRates(inProfile, outProfile)
	if len(rates) == 0 {
		return Config{}, fmt.Errorf("no common sample rate for %s: %w", inProfile.format, ErrBadValue)
	}

	rate := rates.Min()
	if preferHigherSamplingRates {
		rate = rates.Max()
	}

	return Config{Rate: rate, ChannelMask: mask, Format: inProfile.format}, nil
}

func firstSharedFormat(input, output *ProfileStore, preferred []Format) (*Profile, *Profile, bool) {
	for _, f := range preferred {
		in, out := input.ProfileFor(f), output.ProfileFor(f)
		if in != nil && out != nil {
			return in, out, true
		}
	}

	return nil, nil, false
}

func firstSharedChannelMask(in, out *Profile, preferred []ChannelMask) (ChannelMask, bool) {
	anyMask := !in.HasValidChannels() && !out.HasValidChannels()
	shared := sharedChannelMasks(in, out)

	for _, m := range preferred {
		if anyMask || shared.Contains(m) {
			return m, true
		}
	}

	return AUDIO_CHANNEL_NONE, false
}

// sharedChannelMasks returns the masks accepted by both profiles, nil when both accept any mask.
func sharedChannelMasks(in, out *Profile) ChannelMaskSet {
	switch {
	case in.HasValidChannels() && out.HasValidChannels():
		return in.channelMasks.Intersect(out.channelMasks)
	case in.HasValidChannels():
		return in.channelMasks
	default:
		return out.channelMasks
	}
}

func sharedSampleRates(in, out *Profile) SampleRateSet {
	switch {
	case in.HasValidRates() && out.HasValidRates():
		return in.rates.Intersect(out.rates)
	case in.HasValidRates():
		return in.rates
	case out.HasValidRates():
		return out.rates
	default:
		return StandardSampleRates
	}
}
