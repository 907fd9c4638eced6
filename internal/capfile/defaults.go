package capfile

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultPortType  = "device"
	defaultRole      = "sink"
)

var (
	defaultPreferredFormats = []string{
		"PCM_FLOAT",
		"PCM_32_BIT",
		"PCM_24_BIT_PACKED",
		"PCM_16_BIT",
	}
	defaultPreferredChannelMasks = []string{
		"STEREO",
		"MONO",
	}
)

// Default returns the settings used for keys absent from a capability file.
func Default() File {
	return File{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Match: Match{
			PreferHigherSamplingRates: true,
		},
	}
}
