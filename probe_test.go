package audioprofile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ap "github.com/gen2brain/audioprofile"
)

func TestProfilesFromCapabilities(t *testing.T) {
	caps := ap.RangeCapabilities{
		FormatList:  []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT, ap.AUDIO_FORMAT_PCM_FLOAT, ap.AUDIO_FORMAT_DEFAULT, ap.AUDIO_FORMAT_PCM_16_BIT},
		MinRate:     44100,
		MaxRate:     48000,
		MinChannels: 1,
		MaxChannels: 2,
	}

	profiles, err := ap.ProfilesFromCapabilities(caps)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	for _, p := range profiles {
		assert.Equal(t, ap.SampleRateSet{44100, 48000}, p.SampleRates())
		assert.Equal(t, ap.ChannelMaskSet{ap.AUDIO_CHANNEL_OUT_MONO, ap.AUDIO_CHANNEL_OUT_STEREO}, p.ChannelMasks())
	}
	assert.Equal(t, ap.AUDIO_FORMAT_PCM_16_BIT, profiles[0].Format())
	assert.Equal(t, ap.AUDIO_FORMAT_PCM_FLOAT, profiles[1].Format())
}

func TestProfilesFromCapabilitiesIntervals(t *testing.T) {
	testCases := []struct {
		name     string
		caps     ap.RangeCapabilities
		rates    ap.SampleRateSet
		channels uint32
	}{
		{"open rate interval", ap.RangeCapabilities{MaxRate: ^uint32(0), MinChannels: 2, MaxChannels: 2}, nil, 1},
		{"open channel interval", ap.RangeCapabilities{MinRate: 8000, MaxRate: 16000}, ap.SampleRateSet{8000, 11025, 12000, 16000}, 0},
		{"single non-standard rate", ap.RangeCapabilities{MinRate: 12345, MaxRate: 12345, MaxChannels: 8}, ap.SampleRateSet{12345}, 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.caps.FormatList = []ap.Format{ap.AUDIO_FORMAT_PCM_32_BIT}

			profiles, err := ap.ProfilesFromCapabilities(tc.caps)
			require.NoError(t, err)
			require.Len(t, profiles, 1)
			assert.Equal(t, tc.rates, profiles[0].SampleRates())
			assert.Len(t, profiles[0].ChannelMasks(), int(tc.channels))
		})
	}
}

func TestProfilesFromCapabilitiesInvalid(t *testing.T) {
	testCases := map[string]ap.Capabilities{
		"nil":               nil,
		"no formats":        ap.RangeCapabilities{MinRate: 8000, MaxRate: 48000},
		"only default":      ap.RangeCapabilities{FormatList: []ap.Format{ap.AUDIO_FORMAT_DEFAULT}},
		"inverted rates":    ap.RangeCapabilities{FormatList: []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT}, MinRate: 48000, MaxRate: 44100},
		"no standard rate":  ap.RangeCapabilities{FormatList: []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT}, MinRate: 44101, MaxRate: 47999},
		"too many channels": ap.RangeCapabilities{FormatList: []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT}, MinChannels: 1, MaxChannels: 64},
		"inverted channels": ap.RangeCapabilities{FormatList: []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT}, MinChannels: 4, MaxChannels: 2},
	}

	for name, caps := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ap.ProfilesFromCapabilities(caps)
			assert.ErrorIs(t, err, ap.ErrBadValue)
		})
	}
}

func TestAddProbedProfiles(t *testing.T) {
	store := ap.NewProfileStore(profile(ap.AUDIO_FORMAT_PCM_16_BIT, stereoOnly, 96000))

	err := ap.AddProbedProfiles(store, ap.RangeCapabilities{
		FormatList:  []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT, ap.AUDIO_FORMAT_PCM_FLOAT},
		MinRate:     48000,
		MaxRate:     48000,
		MinChannels: 2,
		MaxChannels: 2,
	})
	require.NoError(t, err)

	require.Equal(t, []ap.Format{ap.AUDIO_FORMAT_PCM_FLOAT, ap.AUDIO_FORMAT_PCM_16_BIT}, store.Formats())
	assert.Equal(t, ap.SampleRateSet{48000, 96000}, store.ProfileFor(ap.AUDIO_FORMAT_PCM_16_BIT).SampleRates())
	assert.False(t, store.ProfileFor(ap.AUDIO_FORMAT_PCM_16_BIT).IsDynamic())
	assert.True(t, store.ProfileFor(ap.AUDIO_FORMAT_PCM_FLOAT).IsDynamic())

	store.ClearDynamicProfiles()
	assert.Equal(t, []ap.Format{ap.AUDIO_FORMAT_PCM_16_BIT}, store.Formats())

	assert.ErrorIs(t, ap.AddProbedProfiles(store, ap.RangeCapabilities{}), ap.ErrBadValue)
}
