package audioprofile

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const indexMaskPrefix = "AUDIO_CHANNEL_INDEX_MASK_"

// Representation returns how the bits of the mask are interpreted.
func (m ChannelMask) Representation() ChannelRepresentation {
	return ChannelRepresentation(m >> channelRepresentationShift)
}

// Bits returns the position or index bits of the mask without the representation.
func (m ChannelMask) Bits() uint32 {
	return uint32(m & channelValidMask)
}

// IsIndex reports whether the mask uses the index representation.
func (m ChannelMask) IsIndex() bool {
	return m.Representation() == AUDIO_CHANNEL_REPRESENTATION_INDEX
}

// Count returns the number of channels in the mask.
func (m ChannelMask) Count() uint32 {
	return uint32(bits.OnesCount32(m.Bits()))
}

// IsValid reports whether the mask has a known representation and at least one channel.
func (m ChannelMask) IsValid() bool {
	switch m.Representation() {
	case AUDIO_CHANNEL_REPRESENTATION_POSITION, AUDIO_CHANNEL_REPRESENTATION_INDEX:
		return m.Bits() != 0
	default:
		return false
	}
}

// String returns the AUDIO_CHANNEL_* name of the mask, or its hex value when unknown.
func (m ChannelMask) String() string {
	if name, ok := ChannelMaskNames[m]; ok {
		return name
	}

	if m.IsIndex() && m == ChannelIndexMask(m.Count()) {
		return fmt.Sprintf("%s%d", indexMaskPrefix, m.Count())
	}

	return fmt.Sprintf("0x%08X", uint32(m))
}

// ChannelIndexMask returns the index mask for the first count channels.
func ChannelIndexMask(count uint32) ChannelMask {
	if count == 0 || count > channelCountMax {
		return AUDIO_CHANNEL_NONE
	}

	return ChannelMask(AUDIO_CHANNEL_REPRESENTATION_INDEX)<<channelRepresentationShift | ChannelMask(1<<count-1)
}

// ChannelMaskForCount returns the conventional positional layout for a channel count.
// Counts without a conventional layout get an index mask.
func ChannelMaskForCount(count uint32) ChannelMask {
	switch count {
	case 1:
		return AUDIO_CHANNEL_OUT_MONO
	case 2:
		return AUDIO_CHANNEL_OUT_STEREO
	case 3:
		return AUDIO_CHANNEL_OUT_2POINT1
	case 4:
		return AUDIO_CHANNEL_OUT_QUAD
	case 5:
		return AUDIO_CHANNEL_OUT_QUAD | AUDIO_CHANNEL_OUT_FRONT_CENTER
	case 6:
		return AUDIO_CHANNEL_OUT_5POINT1
	case 7:
		return AUDIO_CHANNEL_OUT_5POINT1 | AUDIO_CHANNEL_OUT_BACK_CENTER
	case 8:
		return AUDIO_CHANNEL_OUT_7POINT1
	default:
		return ChannelIndexMask(count)
	}
}

// ParseChannelMask parses a channel mask name. Accepted forms are the full AUDIO_CHANNEL_* name,
// the short layout name (e.g. "stereo", "5POINT1"), "INDEX_MASK_<n>" and numeric values.
func ParseChannelMask(s string) (ChannelMask, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return AUDIO_CHANNEL_NONE, fmt.Errorf("empty channel mask name")
	}

	switch {
	case strings.HasPrefix(name, "INDEX_MASK_"):
		name = "AUDIO_CHANNEL_" + name
	case name == "NONE":
		name = "AUDIO_CHANNEL_NONE"
	case !strings.HasPrefix(name, "AUDIO_CHANNEL_"):
		name = "AUDIO_CHANNEL_OUT_" + name
	}

	if strings.HasPrefix(name, indexMaskPrefix) {
		n, err := strconv.ParseUint(strings.TrimPrefix(name, indexMaskPrefix), 10, 32)
		if err != nil || n == 0 || n > channelCountMax {
			return AUDIO_CHANNEL_NONE, fmt.Errorf("invalid index mask %q", s)
		}

		return ChannelIndexMask(uint32(n)), nil
	}

	for m, n := range ChannelMaskNames {
		if n == name {
			return m, nil
		}
	}

	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return AUDIO_CHANNEL_NONE, fmt.Errorf("unknown channel mask %q", s)
	}

	return ChannelMask(v), nil
}

// channelMatchScore measures how well a supported mask can carry a requested mask, higher is better.
// Zero means the supported mask is unusable.
func channelMatchScore(requested, supported ChannelMask) int {
	if supported == AUDIO_CHANNEL_NONE {
		return 0
	}

	count := requested.Count()
	supportedCount := supported.Count()

	switch {
	case requested.IsIndex() && supported.IsIndex():
		return 100 + int(min(count, supportedCount))
	case requested.IsIndex():
		equivalent := uint32(1)<<supportedCount - 1
		score := bits.OnesCount32(requested.Bits() & equivalent)
		// A positional layout with the same channel count carries every index.
		if count == supportedCount {
			score += 100
		}

		return score
	case supported.IsIndex():
		equivalent := uint32(1)<<count - 1

		return bits.OnesCount32(equivalent & supported.Bits())
	}

	if (requested == AUDIO_CHANNEL_OUT_MONO && supported == AUDIO_CHANNEL_OUT_STEREO) ||
		(requested == AUDIO_CHANNEL_OUT_STEREO && supported == AUDIO_CHANNEL_OUT_MONO) {
		return 1000
	}

	return 100 + bits.OnesCount32(requested.Bits()&supported.Bits())
}
