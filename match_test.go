package audioprofile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ap "github.com/gen2brain/audioprofile"
)

var (
	playbackDevice = struct {
		portType ap.PortType
		portRole ap.PortRole
	}{ap.AUDIO_PORT_TYPE_DEVICE, ap.AUDIO_PORT_ROLE_SINK}

	captureDevice = struct {
		portType ap.PortType
		portRole ap.PortRole
	}{ap.AUDIO_PORT_TYPE_DEVICE, ap.AUDIO_PORT_ROLE_SOURCE}
)

func TestCheckExactProfileEmptyStore(t *testing.T) {
	for _, store := range []*ap.ProfileStore{nil, ap.NewProfileStore()} {
		assert.NoError(t, ap.CheckExactProfile(store, 44100, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_16_BIT))
		assert.NoError(t, ap.CheckExactProfile(store, 1, ap.AUDIO_CHANNEL_NONE, ap.AUDIO_FORMAT_AAC))
		assert.NoError(t, ap.CheckIdenticalProfile(store, 96000, ap.AUDIO_CHANNEL_OUT_5POINT1, ap.AUDIO_FORMAT_PCM_FLOAT))
	}
}

func TestCheckExactVersusIdentical(t *testing.T) {
	store := ap.NewProfileStore(stereo48k(ap.AUDIO_FORMAT_PCM_24_BIT_PACKED))

	testCases := []struct {
		name      string
		rate      uint32
		mask      ap.ChannelMask
		format    ap.Format
		exact     bool
		identical bool
	}{
		{"declared triple", 48000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_24_BIT_PACKED, true, true},
		{"equivalent 32 bit", 48000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_32_BIT, true, false},
		{"equivalent float", 48000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_FLOAT, true, false},
		{"equivalent 16 bit", 48000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_16_BIT, true, false},
		{"8 bit excluded", 48000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_8_BIT, false, false},
		{"compressed", 48000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_AAC, false, false},
		{"other rate", 44100, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_PCM_24_BIT_PACKED, false, false},
		{"other mask", 48000, ap.AUDIO_CHANNEL_OUT_MONO, ap.AUDIO_FORMAT_PCM_24_BIT_PACKED, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ap.CheckExactProfile(store, tc.rate, tc.mask, tc.format)
			if tc.exact {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ap.ErrBadValue)
			}

			err = ap.CheckIdenticalProfile(store, tc.rate, tc.mask, tc.format)
			if tc.identical {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ap.ErrBadValue)
			}
		})
	}
}

func TestCheckExactProfileWildcard(t *testing.T) {
	store := ap.NewProfileStore(ap.NewWildcardProfile(ap.AUDIO_FORMAT_PCM_16_BIT))

	assert.NoError(t, ap.CheckExactProfile(store, 12345, ap.AUDIO_CHANNEL_OUT_5POINT1, ap.AUDIO_FORMAT_PCM_16_BIT))
	assert.ErrorIs(t, ap.CheckIdenticalProfile(store, 12345, ap.AUDIO_CHANNEL_OUT_5POINT1, ap.AUDIO_FORMAT_PCM_16_BIT), ap.ErrBadValue)

	// Only the rate is left open.
	store = ap.NewProfileStore(ap.NewProfile(ap.AUDIO_FORMAT_AC3, ap.NewChannelMaskSet(ap.AUDIO_CHANNEL_OUT_5POINT1), nil))
	assert.NoError(t, ap.CheckExactProfile(store, 32000, ap.AUDIO_CHANNEL_OUT_5POINT1, ap.AUDIO_FORMAT_AC3))
	assert.ErrorIs(t, ap.CheckExactProfile(store, 32000, ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_FORMAT_AC3), ap.ErrBadValue)
}

func TestCheckCompatibleProfileRateDirection(t *testing.T) {
	store := ap.NewProfileStore(ap.NewProfile(ap.AUDIO_FORMAT_PCM_16_BIT,
		ap.NewChannelMaskSet(ap.AUDIO_CHANNEL_OUT_STEREO), ap.NewSampleRateSet(44100, 48000)))

	testCases := []struct {
		name     string
		rate     uint32
		portType ap.PortType
		portRole ap.PortRole
		want     uint32
	}{
		{"exact rate", 48000, playbackDevice.portType, playbackDevice.portRole, 48000},
		{"playback rounds up", 44099, playbackDevice.portType, playbackDevice.portRole, 44100},
		{"playback rounds up between rates", 46000, playbackDevice.portType, playbackDevice.portRole, 48000},
		{"playback falls back down", 96000, playbackDevice.portType, playbackDevice.portRole, 48000},
		{"capture rounds down", 46000, captureDevice.portType, captureDevice.portRole, 44100},
		{"capture falls back up", 44099, captureDevice.portType, captureDevice.portRole, 44100},
		{"capture above range", 96000, captureDevice.portType, captureDevice.portRole, 48000},
		{"record mix rounds down", 46000, ap.AUDIO_PORT_TYPE_MIX, ap.AUDIO_PORT_ROLE_SINK, 44100},
		{"playback mix rounds up", 46000, ap.AUDIO_PORT_TYPE_MIX, ap.AUDIO_PORT_ROLE_SOURCE, 48000},
		{"untyped port rounds up", 46000, ap.AUDIO_PORT_TYPE_NONE, ap.AUDIO_PORT_ROLE_NONE, 48000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := ap.Config{Rate: tc.rate, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: ap.AUDIO_FORMAT_PCM_16_BIT}

			got, err := ap.CheckCompatibleProfile(store, req, tc.portType, tc.portRole, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Rate)
			assert.Equal(t, ap.AUDIO_CHANNEL_OUT_STEREO, got.ChannelMask)
			assert.Equal(t, ap.AUDIO_FORMAT_PCM_16_BIT, got.Format)
		})
	}
}

func TestCheckCompatibleProfileResamplerLimits(t *testing.T) {
	high := ap.NewProfileStore(ap.NewProfile(ap.AUDIO_FORMAT_PCM_16_BIT, nil, ap.NewSampleRateSet(384000)))
	low := ap.NewProfileStore(ap.NewProfile(ap.AUDIO_FORMAT_PCM_16_BIT, nil, ap.NewSampleRateSet(8000)))

	// 384000 / 256 > 1000, beyond the downsampling ratio.
	_, err := ap.CheckCompatibleProfile(high,
		ap.Config{Rate: 1000, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: ap.AUDIO_FORMAT_PCM_16_BIT},
		playbackDevice.portType, playbackDevice.portRole, 0)
	assert.ErrorIs(t, err, ap.ErrBadValue)

	req := ap.Config{Rate: 44100, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: ap.AUDIO_FORMAT_PCM_16_BIT}

	got, err := ap.CheckCompatibleProfile(high, req, playbackDevice.portType, playbackDevice.portRole, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(384000), got.Rate)

	// Capture never substitutes a rate above MaxCaptureSampleRate.
	_, err = ap.CheckCompatibleProfile(high, req, captureDevice.portType, captureDevice.portRole, 0)
	assert.ErrorIs(t, err, ap.ErrBadValue)

	got, err = ap.CheckCompatibleProfile(low, ap.Config{Rate: 192000, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: ap.AUDIO_FORMAT_PCM_16_BIT},
		playbackDevice.portType, playbackDevice.portRole, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(8000), got.Rate)
}

func TestCheckCompatibleProfileChannelMask(t *testing.T) {
	store := ap.NewProfileStore(ap.NewProfile(ap.AUDIO_FORMAT_PCM_16_BIT,
		ap.NewChannelMaskSet(ap.AUDIO_CHANNEL_OUT_STEREO, ap.AUDIO_CHANNEL_OUT_7POINT1), ap.NewSampleRateSet(48000)))

	testCases := []struct {
		name string
		mask ap.ChannelMask
		want ap.ChannelMask
	}{
		{"declared", ap.AUDIO_CHANNEL_OUT_7POINT1, ap.AUDIO_CHANNEL_OUT_7POINT1},
		{"mono carried as stereo", ap.AUDIO_CHANNEL_OUT_MONO, ap.AUDIO_CHANNEL_OUT_STEREO},
		{"5.1 carried as 7.1", ap.AUDIO_CHANNEL_OUT_5POINT1, ap.AUDIO_CHANNEL_OUT_7POINT1},
		{"index mask of two channels", ap.ChannelIndexMask(2), ap.AUDIO_CHANNEL_OUT_STEREO},
		{"index mask of eight channels", ap.ChannelIndexMask(8), ap.AUDIO_CHANNEL_OUT_7POINT1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := ap.Config{Rate: 48000, ChannelMask: tc.mask, Format: ap.AUDIO_FORMAT_PCM_16_BIT}

			got, err := ap.CheckCompatibleProfile(store, req, playbackDevice.portType, playbackDevice.portRole, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.ChannelMask)
		})
	}

	// The channel count decides for index masks whatever the direction.
	eight := ap.Config{Rate: 48000, ChannelMask: ap.ChannelIndexMask(8), Format: ap.AUDIO_FORMAT_PCM_16_BIT}
	got, err := ap.CheckCompatibleProfile(store, eight, ap.AUDIO_PORT_TYPE_MIX, ap.AUDIO_PORT_ROLE_SINK, 0)
	require.NoError(t, err)
	assert.Equal(t, ap.AUDIO_CHANNEL_OUT_7POINT1, got.ChannelMask)
	assert.Equal(t, uint32(8), got.ChannelMask.Count())

	req := ap.Config{Rate: 48000, ChannelMask: ap.AUDIO_CHANNEL_OUT_MONO, Format: ap.AUDIO_FORMAT_PCM_16_BIT}
	got, err = ap.CheckCompatibleProfile(store, req, playbackDevice.portType, playbackDevice.portRole, ap.MATCH_EXACT_CHANNEL_MASK)
	assert.ErrorIs(t, err, ap.ErrBadValue)
	assert.Equal(t, ap.Config{}, got)
}

func TestCheckCompatibleProfileFormat(t *testing.T) {
	store := ap.NewProfileStore(
		stereo48k(ap.AUDIO_FORMAT_PCM_FLOAT),
		stereo48k(ap.AUDIO_FORMAT_PCM_32_BIT),
		ap.NewWildcardProfile(ap.AUDIO_FORMAT_AAC),
	)

	req := func(f ap.Format) ap.Config {
		return ap.Config{Rate: 48000, ChannelMask: ap.AUDIO_CHANNEL_OUT_STEREO, Format: f}
	}

	// The declared format wins over an equivalent one sorted in front of it.
	got, err := ap.CheckCompatibleProfile(store, req(ap.AUDIO_FORMAT_PCM_32_BIT), playbackDevice.portType, playbackDevice.portRole, 0)
	require.NoError(t, err)
	assert.Equal(t, ap.AUDIO_FORMAT_PCM_32_BIT, got.Format)

	// Undeclared PCM formats use the preferred equivalent.
	got, err = ap.CheckCompatibleProfile(store, req(ap.AUDIO_FORMAT_PCM_16_BIT), playbackDevice.portType, playbackDevice.portRole, 0)
	require.NoError(t, err)
	assert.Equal(t, ap.AUDIO_FORMAT_PCM_FLOAT, got.Format)

	_, err = ap.CheckCompatibleProfile(store, req(ap.AUDIO_FORMAT_PCM_16_BIT), playbackDevice.portType, playbackDevice.portRole, ap.MATCH_EXACT_FORMAT)
	assert.ErrorIs(t, err, ap.ErrBadValue)

	_, err = ap.CheckCompatibleProfile(store, req(ap.AUDIO_FORMAT_PCM_8_BIT), playbackDevice.portType, playbackDevice.portRole, 0)
	assert.ErrorIs(t, err, ap.ErrBadValue)

	// Wildcard compressed profile keeps everything but only for its own format.
	aac := ap.Config{Rate: 44100, ChannelMask: ap.AUDIO_CHANNEL_OUT_5POINT1, Format: ap.AUDIO_FORMAT_AAC}
	got, err = ap.CheckCompatibleProfile(store, aac, playbackDevice.portType, playbackDevice.portRole, ap.MATCH_EXACT_FORMAT|ap.MATCH_EXACT_CHANNEL_MASK)
	require.NoError(t, err)
	assert.Equal(t, aac, got)

	_, err = ap.CheckCompatibleProfile(store, req(ap.AUDIO_FORMAT_MP3), playbackDevice.portType, playbackDevice.portRole, 0)
	assert.ErrorIs(t, err, ap.ErrBadValue)
}

func TestCheckCompatibleProfileEmptyStore(t *testing.T) {
	req := ap.Config{Rate: 22050, ChannelMask: ap.AUDIO_CHANNEL_OUT_MONO, Format: ap.AUDIO_FORMAT_PCM_8_BIT}

	got, err := ap.CheckCompatibleProfile(ap.NewProfileStore(), req, captureDevice.portType, captureDevice.portRole, ap.MATCH_EXACT_FORMAT)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}
