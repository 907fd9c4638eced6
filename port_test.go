package audioprofile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ap "github.com/gen2brain/audioprofile"
)

func TestParsePort(t *testing.T) {
	portType, err := ap.ParsePortType(" Device ")
	require.NoError(t, err)
	assert.Equal(t, ap.AUDIO_PORT_TYPE_DEVICE, portType)
	assert.Equal(t, "device", portType.String())

	portType, err = ap.ParsePortType("")
	require.NoError(t, err)
	assert.Equal(t, ap.AUDIO_PORT_TYPE_NONE, portType)

	_, err = ap.ParsePortType("bus")
	assert.Error(t, err)

	role, err := ap.ParsePortRole("SINK")
	require.NoError(t, err)
	assert.Equal(t, ap.AUDIO_PORT_ROLE_SINK, role)
	assert.Equal(t, "sink", role.String())

	_, err = ap.ParsePortRole("both")
	assert.Error(t, err)

	assert.Equal(t, "PortRole(7)", ap.PortRole(7).String())
}
