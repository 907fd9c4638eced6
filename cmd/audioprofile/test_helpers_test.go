package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

const testDevices = `
[logging]
level = "warn"

[[device]]
name = "speaker"
port_type = "device"
role = "sink"

[[device.profile]]
format = "PCM_16_BIT"
rates = [48000]
channel_masks = ["stereo"]

[[device.profile]]
format = "PCM_FLOAT"
rates = [48000, 96000]
channel_masks = ["stereo", "5point1"]

[[device]]
name = "mic"
port_type = "device"
role = "source"

[[device.profile]]
format = "PCM_16_BIT"
rates = [16000, 44100, 48000]
channel_masks = ["mono", "stereo"]

[[device]]
name = "hdmi"
formats = ["AC3", "PCM_16_BIT"]
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "devices.toml")
	require.NoError(t, os.WriteFile(path, []byte(testDevices), 0o644))

	return path
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeTestWav(t *testing.T, rate, bitDepth, channels int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	encoder := wav.NewEncoder(f, rate, bitDepth, channels, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, rate/10*channels),
		SourceBitDepth: bitDepth,
	}
	require.NoError(t, encoder.Write(buf))
	require.NoError(t, encoder.Close())
	require.NoError(t, f.Close())

	return path
}
