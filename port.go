package audioprofile

import (
	"fmt"
	"slices"
	"strings"
)

// String returns the lowercase name of the port type.
func (t PortType) String() string {
	if t >= 0 && int(t) < len(PortTypeNames) {
		return PortTypeNames[t]
	}

	return fmt.Sprintf("PortType(%d)", int32(t))
}

// String returns the lowercase name of the port role.
func (r PortRole) String() string {
	if r >= 0 && int(r) < len(PortRoleNames) {
		return PortRoleNames[r]
	}

	return fmt.Sprintf("PortRole(%d)", int32(r))
}

// ParsePortType parses a port type name such as "device" or "mix". An empty name is AUDIO_PORT_TYPE_NONE.
func ParsePortType(s string) (PortType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return AUDIO_PORT_TYPE_NONE, nil
	}

	i := slices.Index(PortTypeNames, name)
	if i < 0 {
		return AUDIO_PORT_TYPE_NONE, fmt.Errorf("unknown port type %q", s)
	}

	return PortType(i), nil
}

// ParsePortRole parses a port role name such as "source" or "sink". An empty name is AUDIO_PORT_ROLE_NONE.
func ParsePortRole(s string) (PortRole, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return AUDIO_PORT_ROLE_NONE, nil
	}

	i := slices.Index(PortRoleNames, name)
	if i < 0 {
		return AUDIO_PORT_ROLE_NONE, fmt.Errorf("unknown port role %q", s)
	}

	return PortRole(i), nil
}
