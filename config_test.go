package audioprofile_test

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ap "github.com/gen2brain/audioprofile"
)

func TestConfigFromAudioFormat(t *testing.T) {
	testCases := []struct {
		name     string
		format   *audio.Format
		bitDepth int
		float    bool
		want     ap.Config
	}{
		{"16-bit stereo", &audio.Format{NumChannels: 2, SampleRate: 44100}, 16, false,
			ap.Config{Rate: 44100, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: ap.AUDIO_FORMAT_PCM_16_BIT}},
		{"24-bit 5.1", &audio.Format{NumChannels: 6, SampleRate: 48000}, 24, false,
			ap.Config{Rate: 48000, ChannelMask: ap.AUDIO_CHANNEL_OUT_5POINT1, Format: ap.AUDIO_FORMAT_PCM_24_BIT_PACKED}},
		{"float mono", &audio.Format{NumChannels: 1, SampleRate: 96000}, 32, true,
			ap.Config{Rate: 96000, ChannelMask: ap.AUDIO_CHANNEL_OUT_MONO, Format: ap.AUDIO_FORMAT_PCM_FLOAT}},
		{"8-bit", &audio.Format{NumChannels: 1, SampleRate: 8000}, 8, false,
			ap.Config{Rate: 8000, ChannelMask: ap.AUDIO_CHANNEL_OUT_MONO, Format: ap.AUDIO_FORMAT_PCM_8_BIT}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ap.ConfigFromAudioFormat(tc.format, tc.bitDepth, tc.float)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.IsValid())
			assert.Equal(t, tc.format, got.AudioFormat())
		})
	}

	_, err := ap.ConfigFromAudioFormat(nil, 16, false)
	assert.Error(t, err)

	_, err = ap.ConfigFromAudioFormat(&audio.Format{NumChannels: 0, SampleRate: 44100}, 16, false)
	assert.Error(t, err)

	_, err = ap.ConfigFromAudioFormat(&audio.Format{NumChannels: 2, SampleRate: 44100}, 12, false)
	assert.Error(t, err)

	_, err = ap.ConfigFromAudioFormat(&audio.Format{NumChannels: 2, SampleRate: 44100}, 16, true)
	assert.Error(t, err)
}

func TestConfigString(t *testing.T) {
	c := ap.Config{Rate: 48000, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: ap.AUDIO_FORMAT_PCM_16_BIT}
	assert.Equal(t, "48000 Hz, AUDIO_CHANNEL_OUT_STEREO, AUDIO_FORMAT_PCM_16_BIT", c.String())
	assert.False(t, ap.Config{}.IsValid())
}
