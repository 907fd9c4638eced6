package audioprofile

import (
	"fmt"
)

// CheckExactProfile checks whether the store has a profile accepting rate, mask and format.
// Formats are compared with FormatsMatch, so high-precision linear PCM formats substitute for each other,
// and profiles with empty rate or channel sets accept any value. An empty store accepts everything.
// Returns nil on a match, otherwise an error wrapping ErrBadValue.
func CheckExactProfile(store *ProfileStore, rate uint32, mask ChannelMask, format Format) error {
	if store.IsEmpty() {
		return nil
	}

	for _, p := range store.profiles {
		if FormatsMatch(p.format, format) && p.SupportsRate(rate) && p.SupportsChannelMask(mask) {
			return nil
		}
	}

	return fmt.Errorf("no profile matches %s: %w", Config{Rate: rate, ChannelMask: mask, Format: format}, ErrBadValue)
}

// CheckIdenticalProfile checks whether the store explicitly declares exactly rate, mask and format.
// Profiles with empty rate or channel sets never satisfy it. An empty store accepts everything.
// Returns nil on a match, otherwise an error wrapping ErrBadValue.
func CheckIdenticalProfile(store *ProfileStore, rate uint32, mask ChannelMask, format Format) error {
	if store.IsEmpty() {
		return nil
	}

	for _, p := range store.profiles {
		if p.format == format && p.rates.Contains(rate) && p.channelMasks.Contains(mask) {
			return nil
		}
	}

	return fmt.Errorf("no profile declares %s: %w", Config{Rate: rate, ChannelMask: mask, Format: format}, ErrBadValue)
}

// CheckCompatibleProfile finds the supported configuration closest to req.
//
// The profile for req.Format is tried first, then, unless MATCH_EXACT_FORMAT is set, the profiles of
// equivalent formats in store order. Within a profile the requested channel mask is kept when declared;
// otherwise, unless MATCH_EXACT_CHANNEL_MASK is set, the best supported substitute is used. The requested
// rate is kept when declared; otherwise the port decides the direction of substitution: capture ports
// round down, playback ports round up.
//
// An empty store accepts req unchanged. On failure the returned Config is zero and the error wraps ErrBadValue.
func CheckCompatibleProfile(store *ProfileStore, req Config, portType PortType, portRole PortRole, flags MatchFlag) (Config, error) {
	if store.IsEmpty() {
		return req, nil
	}

	capture := isCaptureDirection(portType, portRole)
	exactChannelMask := flags&MATCH_EXACT_CHANNEL_MASK != 0

	for _, p := range compatibleCandidates(store, req.Format, flags&MATCH_EXACT_FORMAT != 0) {
		mask, ok := p.compatibleChannelMask(req.ChannelMask, exactChannelMask)
		if !ok {
			continue
		}

		rate, ok := p.compatibleSampleRate(req.Rate, capture)
		if !ok {
			continue
		}

		return Config{Rate: rate, ChannelMask: mask, Format: p.format}, nil
	}

	return Config{}, fmt.Errorf("no profile compatible with %s: %w", req, ErrBadValue)
}

// isCaptureDirection reports whether audio flows from the port towards the client:
// an input device, or the mix a record client reads from.
func isCaptureDirection(portType PortType, portRole PortRole) bool {
	switch portType {
	case AUDIO_PORT_TYPE_DEVICE:
		return portRole == AUDIO_PORT_ROLE_SOURCE
	case AUDIO_PORT_TYPE_MIX:
		return portRole == AUDIO_PORT_ROLE_SINK
	default:
		return false
	}
}

// compatibleCandidates returns the profile for format followed by the profiles of equivalent formats.
func compatibleCandidates(store *ProfileStore, format Format, exactFormat bool) []*Profile {
	var candidates []*Profile
	if p := store.ProfileFor(format); p != nil {
		candidates = append(candidates, p)
	}

	if exactFormat {
		return candidates
	}

	for _, p := range store.profiles {
		if p.format != format && FormatsMatch(p.format, format) {
			candidates = append(candidates, p)
		}
	}

	return candidates
}

func (p *Profile) compatibleChannelMask(mask ChannelMask, exact bool) (ChannelMask, bool) {
	if p.SupportsChannelMask(mask) {
		return mask, true
	}

	if exact {
		return AUDIO_CHANNEL_NONE, false
	}

	best, bestScore := AUDIO_CHANNEL_NONE, 0
	for _, supported := range p.channelMasks {
		if score := channelMatchScore(mask, supported); score > bestScore {
			best, bestScore = supported, score
		}
	}

	return best, bestScore > 0
}

func (p *Profile) compatibleSampleRate(rate uint32, capture bool) (uint32, bool) {
	if p.SupportsRate(rate) {
		return rate, true
	}

	if rate == 0 {
		return 0, false
	}

	higher, hasHigher := p.rates.ceil(rate)
	higherOK := hasHigher && higher/ResamplerDownRatioMax <= rate
	lower, hasLower := p.rates.floor(rate)
	lowerOK := hasLower && uint64(lower)*ResamplerUpRatioMax >= uint64(rate)

	if capture {
		switch {
		case lowerOK:
			return lower, true
		case higherOK && higher <= MaxCaptureSampleRate:
			return higher, true
		}

		return 0, false
	}

	switch {
	case higherOK:
		return higher, true
	case lowerOK:
		return lower, true
	}

	return 0, false
}
