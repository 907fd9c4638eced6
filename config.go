package audioprofile

import (
	"fmt"

	"github.com/go-audio/audio"
)

// Config is a fully resolved stream configuration.
type Config struct {
	Rate        uint32
	ChannelMask ChannelMask
	Format      Format
}

// String returns a human-readable representation of the configuration.
func (c Config) String() string {
	return fmt.Sprintf("%d Hz, %s, %s", c.Rate, c.ChannelMask, c.Format)
}

// IsValid reports whether every field of the configuration is set.
func (c Config) IsValid() bool {
	return c.Rate > 0 && c.ChannelMask.IsValid() && c.Format.IsValid()
}

// AudioFormat returns the go-audio description of the configuration's frame layout.
func (c Config) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: int(c.ChannelMask.Count()),
		SampleRate:  int(c.Rate),
	}
}

// ConfigFromAudioFormat builds a request from a go-audio format and the sample layout of the source.
// Float sources must be 32-bit.
func ConfigFromAudioFormat(f *audio.Format, bitDepth int, float bool) (Config, error) {
	if f == nil {
		return Config{}, fmt.Errorf("nil audio format")
	}

	if f.SampleRate <= 0 || f.NumChannels <= 0 {
		return Config{}, fmt.Errorf("invalid audio format: %d channels at %d Hz", f.NumChannels, f.SampleRate)
	}

	format, err := FormatForBitDepth(bitDepth, float)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Rate:        uint32(f.SampleRate),
		ChannelMask: ChannelMaskForCount(uint32(f.NumChannels)),
		Format:      format,
	}, nil
}

// FormatForBitDepth returns the linear PCM format storing samples of the given bit depth.
func FormatForBitDepth(bitDepth int, float bool) (Format, error) {
	if float {
		if bitDepth != 32 {
			return AUDIO_FORMAT_DEFAULT, fmt.Errorf("unsupported float bit depth %d", bitDepth)
		}

		return AUDIO_FORMAT_PCM_FLOAT, nil
	}

	switch bitDepth {
	case 8:
		return AUDIO_FORMAT_PCM_8_BIT, nil
	case 16:
		return AUDIO_FORMAT_PCM_16_BIT, nil
	case 24:
		return AUDIO_FORMAT_PCM_24_BIT_PACKED, nil
	case 32:
		return AUDIO_FORMAT_PCM_32_BIT, nil
	default:
		return AUDIO_FORMAT_DEFAULT, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}
