package audioprofile

import (
	"fmt"
	"strconv"
	"strings"
)

// pcmPrecisionBits holds the significant bits of each linear PCM sub-format.
// 8_24 carries 24 significant bits in a 32-bit container.
var pcmPrecisionBits = map[Format]uint32{
	AUDIO_FORMAT_PCM_8_BIT:         8,
	AUDIO_FORMAT_PCM_16_BIT:        16,
	AUDIO_FORMAT_PCM_24_BIT_PACKED: 24,
	AUDIO_FORMAT_PCM_8_24_BIT:      24,
	AUDIO_FORMAT_PCM_32_BIT:        32,
	AUDIO_FORMAT_PCM_FLOAT:         32,
}

// String returns the AUDIO_FORMAT_* name of the format, or its hex value when unknown.
func (f Format) String() string {
	if name, ok := FormatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("0x%08X", uint32(f))
}

// IsValid reports whether the format names a concrete encoding.
func (f Format) IsValid() bool {
	return f != AUDIO_FORMAT_DEFAULT
}

// FormatIsLinearPCM reports whether f is an uncompressed linear PCM format with a known sample layout.
func FormatIsLinearPCM(f Format) bool {
	if f&FormatMainMask != AUDIO_FORMAT_PCM {
		return false
	}

	_, ok := pcmPrecisionBits[f]

	return ok
}

// FormatToBits returns the number of significant bits per sample for a linear PCM format.
// Unlike FormatBytesPerSample this is the precision, so 8_24 returns 24. Compressed formats return 0.
func FormatToBits(f Format) uint32 {
	return pcmPrecisionBits[f]
}

// FormatBytesPerSample returns the size of one sample in memory.
// 24-bit samples in 32-bit containers return 4. Compressed formats return 0.
func FormatBytesPerSample(f Format) uint32 {
	switch f {
	case AUDIO_FORMAT_PCM_32_BIT, AUDIO_FORMAT_PCM_8_24_BIT, AUDIO_FORMAT_PCM_FLOAT:
		return 4
	case AUDIO_FORMAT_PCM_24_BIT_PACKED:
		return 3
	case AUDIO_FORMAT_PCM_16_BIT:
		return 2
	case AUDIO_FORMAT_PCM_8_BIT:
		return 1
	default:
		return 0
	}
}

// FormatsMatch reports whether two formats are interchangeable under the relaxed rule:
// linear PCM formats of at least RelaxedFormatMinBytes per sample match each other, anything else only matches itself.
func FormatsMatch(a, b Format) bool {
	return FormatsMatchWithThreshold(a, b, RelaxedFormatMinBytes)
}

// FormatsMatchWithThreshold is FormatsMatch with an explicit sample width threshold in bytes.
func FormatsMatchWithThreshold(a, b Format, minBytes uint32) bool {
	if a == b {
		return true
	}

	if !FormatIsLinearPCM(a) || !FormatIsLinearPCM(b) {
		return false
	}

	return FormatBytesPerSample(a) >= minBytes && FormatBytesPerSample(b) >= minBytes
}

// ParseFormat parses a format name. Both the full AUDIO_FORMAT_* name and the short suffix
// (e.g. "PCM_16_BIT", "aac") are accepted, as well as numeric values.
func ParseFormat(s string) (Format, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return AUDIO_FORMAT_DEFAULT, fmt.Errorf("empty format name")
	}

	if !strings.HasPrefix(name, "AUDIO_FORMAT_") {
		name = "AUDIO_FORMAT_" + name
	}

	for f, n := range FormatNames {
		if n == name {
			return f, nil
		}
	}

	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return AUDIO_FORMAT_DEFAULT, fmt.Errorf("unknown format %q", s)
	}

	return Format(v), nil
}
