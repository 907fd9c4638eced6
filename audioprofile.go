// Package audioprofile negotiates audio stream configurations (sample rate, channel mask, sample format)
// between a requested stream and the capability profiles advertised by a device.
package audioprofile

// Format defines the sample encoding of a stream.
// These values correspond to the AUDIO_FORMAT_* constants in the Android system/audio.h header.
// The main format lives in the top byte, the PCM sub-format in the low bits.
type Format uint32

const (
	AUDIO_FORMAT_DEFAULT Format = 0x00000000
	AUDIO_FORMAT_PCM     Format = 0x00000000

	AUDIO_FORMAT_PCM_16_BIT        Format = AUDIO_FORMAT_PCM | 0x1
	AUDIO_FORMAT_PCM_8_BIT         Format = AUDIO_FORMAT_PCM | 0x2
	AUDIO_FORMAT_PCM_32_BIT        Format = AUDIO_FORMAT_PCM | 0x3
	AUDIO_FORMAT_PCM_8_24_BIT      Format = AUDIO_FORMAT_PCM | 0x4
	AUDIO_FORMAT_PCM_FLOAT         Format = AUDIO_FORMAT_PCM | 0x5
	AUDIO_FORMAT_PCM_24_BIT_PACKED Format = AUDIO_FORMAT_PCM | 0x6

	AUDIO_FORMAT_MP3          Format = 0x01000000
	AUDIO_FORMAT_AMR_NB       Format = 0x02000000
	AUDIO_FORMAT_AMR_WB       Format = 0x03000000
	AUDIO_FORMAT_AAC          Format = 0x04000000
	AUDIO_FORMAT_HE_AAC_V1    Format = 0x05000000
	AUDIO_FORMAT_HE_AAC_V2    Format = 0x06000000
	AUDIO_FORMAT_VORBIS       Format = 0x07000000
	AUDIO_FORMAT_OPUS         Format = 0x08000000
	AUDIO_FORMAT_AC3          Format = 0x09000000
	AUDIO_FORMAT_E_AC3        Format = 0x0A000000
	AUDIO_FORMAT_DTS          Format = 0x0B000000
	AUDIO_FORMAT_DTS_HD       Format = 0x0C000000
	AUDIO_FORMAT_IEC61937     Format = 0x0D000000
	AUDIO_FORMAT_DOLBY_TRUEHD Format = 0x0E000000
	AUDIO_FORMAT_FLAC         Format = 0x1B000000

	// FormatMainMask selects the main format of a Format value.
	FormatMainMask Format = 0xFF000000
	// FormatSubMask selects the sub-format (PCM sample layout) of a Format value.
	FormatSubMask Format = 0x00FFFFFF
)

// ChannelMask describes the channel count and spatial layout of a stream.
// Bits 30-31 hold the representation, the remaining bits are either speaker positions or channel indices.
type ChannelMask uint32

// Channel position bits, matching AUDIO_CHANNEL_OUT_* in system/audio.h.
const (
	AUDIO_CHANNEL_NONE ChannelMask = 0x0

	AUDIO_CHANNEL_OUT_FRONT_LEFT            ChannelMask = 0x1
	AUDIO_CHANNEL_OUT_FRONT_RIGHT           ChannelMask = 0x2
	AUDIO_CHANNEL_OUT_FRONT_CENTER          ChannelMask = 0x4
	AUDIO_CHANNEL_OUT_LOW_FREQUENCY         ChannelMask = 0x8
	AUDIO_CHANNEL_OUT_BACK_LEFT             ChannelMask = 0x10
	AUDIO_CHANNEL_OUT_BACK_RIGHT            ChannelMask = 0x20
	AUDIO_CHANNEL_OUT_FRONT_LEFT_OF_CENTER  ChannelMask = 0x40
	AUDIO_CHANNEL_OUT_FRONT_RIGHT_OF_CENTER ChannelMask = 0x80
	AUDIO_CHANNEL_OUT_BACK_CENTER           ChannelMask = 0x100
	AUDIO_CHANNEL_OUT_SIDE_LEFT             ChannelMask = 0x200
	AUDIO_CHANNEL_OUT_SIDE_RIGHT            ChannelMask = 0x400
)

// Common positional layouts.
const (
	AUDIO_CHANNEL_OUT_MONO    = AUDIO_CHANNEL_OUT_FRONT_LEFT
	AUDIO_CHANNEL_OUT_STEREO  = AUDIO_CHANNEL_OUT_FRONT_LEFT | AUDIO_CHANNEL_OUT_FRONT_RIGHT
	AUDIO_CHANNEL_OUT_2POINT1 = AUDIO_CHANNEL_OUT_STEREO | AUDIO_CHANNEL_OUT_LOW_FREQUENCY
	AUDIO_CHANNEL_OUT_QUAD    = AUDIO_CHANNEL_OUT_STEREO | AUDIO_CHANNEL_OUT_BACK_LEFT | AUDIO_CHANNEL_OUT_BACK_RIGHT
	// AUDIO_CHANNEL_OUT_SURROUND is the LCRS layout.
	AUDIO_CHANNEL_OUT_SURROUND = AUDIO_CHANNEL_OUT_STEREO | AUDIO_CHANNEL_OUT_FRONT_CENTER | AUDIO_CHANNEL_OUT_BACK_CENTER
	AUDIO_CHANNEL_OUT_5POINT1  = AUDIO_CHANNEL_OUT_QUAD | AUDIO_CHANNEL_OUT_FRONT_CENTER | AUDIO_CHANNEL_OUT_LOW_FREQUENCY
	AUDIO_CHANNEL_OUT_7POINT1  = AUDIO_CHANNEL_OUT_5POINT1 | AUDIO_CHANNEL_OUT_SIDE_LEFT | AUDIO_CHANNEL_OUT_SIDE_RIGHT
)

// ChannelRepresentation identifies how the bits of a ChannelMask are interpreted.
type ChannelRepresentation uint32

const (
	// AUDIO_CHANNEL_REPRESENTATION_POSITION masks carry one bit per speaker position.
	AUDIO_CHANNEL_REPRESENTATION_POSITION ChannelRepresentation = 0
	// AUDIO_CHANNEL_REPRESENTATION_INDEX masks carry one bit per channel index without spatial meaning.
	AUDIO_CHANNEL_REPRESENTATION_INDEX ChannelRepresentation = 2
)

const (
	channelRepresentationShift = 30
	channelCountMax            = 30
	channelValidMask           = ChannelMask(1<<channelRepresentationShift) - 1
)

// PortType identifies the kind of endpoint a request is issued for.
type PortType int32

const (
	AUDIO_PORT_TYPE_NONE    PortType = 0
	AUDIO_PORT_TYPE_DEVICE  PortType = 1
	AUDIO_PORT_TYPE_MIX     PortType = 2
	AUDIO_PORT_TYPE_SESSION PortType = 3
)

// PortRole identifies whether an endpoint produces or consumes audio.
type PortRole int32

const (
	AUDIO_PORT_ROLE_NONE   PortRole = 0
	AUDIO_PORT_ROLE_SOURCE PortRole = 1 // Produces audio: an input device, or a playback mix.
	AUDIO_PORT_ROLE_SINK   PortRole = 2 // Consumes audio: an output device, or a record mix.
)

// MatchFlag tightens compatible matching.
type MatchFlag uint32

const (
	// MATCH_EXACT_FORMAT disables the relaxed PCM format equivalence.
	MATCH_EXACT_FORMAT MatchFlag = 1 << 0
	// MATCH_EXACT_CHANNEL_MASK disables substitution of the closest supported channel mask.
	MATCH_EXACT_CHANNEL_MASK MatchFlag = 1 << 1
)

// Resampler limits, matching AUDIO_RESAMPLER_DOWN_RATIO_MAX and AUDIO_RESAMPLER_UP_RATIO_MAX.
const (
	ResamplerDownRatioMax = 256
	ResamplerUpRatioMax   = 65536
)

// MaxCaptureSampleRate is the highest rate a capture stream is substituted up to when no lower rate exists.
const MaxCaptureSampleRate uint32 = 192000

// RelaxedFormatMinBytes is the sample width from which linear PCM formats are treated as interchangeable.
const RelaxedFormatMinBytes = 2

// FormatNames provides human-readable names for formats.
var FormatNames = map[Format]string{
	AUDIO_FORMAT_DEFAULT:           "AUDIO_FORMAT_DEFAULT",
	AUDIO_FORMAT_PCM_16_BIT:        "AUDIO_FORMAT_PCM_16_BIT",
	AUDIO_FORMAT_PCM_8_BIT:         "AUDIO_FORMAT_PCM_8_BIT",
	AUDIO_FORMAT_PCM_32_BIT:        "AUDIO_FORMAT_PCM_32_BIT",
	AUDIO_FORMAT_PCM_8_24_BIT:      "AUDIO_FORMAT_PCM_8_24_BIT",
	AUDIO_FORMAT_PCM_FLOAT:         "AUDIO_FORMAT_PCM_FLOAT",
	AUDIO_FORMAT_PCM_24_BIT_PACKED: "AUDIO_FORMAT_PCM_24_BIT_PACKED",
	AUDIO_FORMAT_MP3:               "AUDIO_FORMAT_MP3",
	AUDIO_FORMAT_AMR_NB:            "AUDIO_FORMAT_AMR_NB",
	AUDIO_FORMAT_AMR_WB:            "AUDIO_FORMAT_AMR_WB",
	AUDIO_FORMAT_AAC:               "AUDIO_FORMAT_AAC",
	AUDIO_FORMAT_HE_AAC_V1:         "AUDIO_FORMAT_HE_AAC_V1",
	AUDIO_FORMAT_HE_AAC_V2:         "AUDIO_FORMAT_HE_AAC_V2",
	AUDIO_FORMAT_VORBIS:            "AUDIO_FORMAT_VORBIS",
	AUDIO_FORMAT_OPUS:              "AUDIO_FORMAT_OPUS",
	AUDIO_FORMAT_AC3:               "AUDIO_FORMAT_AC3",
	AUDIO_FORMAT_E_AC3:             "AUDIO_FORMAT_E_AC3",
	AUDIO_FORMAT_DTS:               "AUDIO_FORMAT_DTS",
	AUDIO_FORMAT_DTS_HD:            "AUDIO_FORMAT_DTS_HD",
	AUDIO_FORMAT_IEC61937:          "AUDIO_FORMAT_IEC61937",
	AUDIO_FORMAT_DOLBY_TRUEHD:      "AUDIO_FORMAT_DOLBY_TRUEHD",
	AUDIO_FORMAT_FLAC:              "AUDIO_FORMAT_FLAC",
}

// ChannelMaskNames provides human-readable names for the common positional layouts.
var ChannelMaskNames = map[ChannelMask]string{
	AUDIO_CHANNEL_NONE:         "AUDIO_CHANNEL_NONE",
	AUDIO_CHANNEL_OUT_MONO:     "AUDIO_CHANNEL_OUT_MONO",
	AUDIO_CHANNEL_OUT_STEREO:   "AUDIO_CHANNEL_OUT_STEREO",
	AUDIO_CHANNEL_OUT_2POINT1:  "AUDIO_CHANNEL_OUT_2POINT1",
	AUDIO_CHANNEL_OUT_QUAD:     "AUDIO_CHANNEL_OUT_QUAD",
	AUDIO_CHANNEL_OUT_SURROUND: "AUDIO_CHANNEL_OUT_SURROUND",
	AUDIO_CHANNEL_OUT_5POINT1:  "AUDIO_CHANNEL_OUT_5POINT1",
	AUDIO_CHANNEL_OUT_7POINT1:  "AUDIO_CHANNEL_OUT_7POINT1",
}

// PortTypeNames provides human-readable names for port types.
// The index corresponds to the PortType value.
var PortTypeNames = []string{
	"none",
	"device",
	"mix",
	"session",
}

// PortRoleNames provides human-readable names for port roles.
// The index corresponds to the PortRole value.
var PortRoleNames = []string{
	"none",
	"source",
	"sink",
}
