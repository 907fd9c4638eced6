package capfile

import (
	"errors"
	"fmt"

	ap "github.com/gen2brain/audioprofile"
)

// Port returns the port type and role of the device.
func (d *Device) Port() (ap.PortType, ap.PortRole, error) {
	portType, err := ap.ParsePortType(d.PortType)
	if err != nil {
		return ap.AUDIO_PORT_TYPE_NONE, ap.AUDIO_PORT_ROLE_NONE, fmt.Errorf("port_type: %w", err)
	}

	role, err := ap.ParsePortRole(d.Role)
	if err != nil {
		return ap.AUDIO_PORT_TYPE_NONE, ap.AUDIO_PORT_ROLE_NONE, fmt.Errorf("role: %w", err)
	}

	return portType, role, nil
}

// Store builds the profile store of the device. Explicit profiles are added first, then a wildcard
// profile for every declared format, then the probed capabilities.
func (d *Device) Store() (*ap.ProfileStore, error) {
	store := ap.NewProfileStore()

	for i, decl := range d.Profiles {
		p, err := decl.profile()
		if err != nil {
			return nil, fmt.Errorf("device %q: profile[%d]: %w", d.Name, i, err)
		}

		if !decl.Dynamic {
			store.AddAndSort(p)

			continue
		}

		if _, err := store.AddDynamicProfileAndSort(p); err != nil {
			return nil, fmt.Errorf("device %q: profile[%d]: %w", d.Name, i, err)
		}
	}

	formats, err := parseFormats(d.Formats)
	if err != nil {
		return nil, fmt.Errorf("device %q: formats: %w", d.Name, err)
	}
	store.AddProfilesForFormats(formats)

	if d.Probe != nil {
		caps, err := d.Probe.capabilities()
		if err != nil {
			return nil, fmt.Errorf("device %q: probe: %w", d.Name, err)
		}

		if err := ap.AddProbedProfiles(store, caps); err != nil {
			return nil, fmt.Errorf("device %q: probe: %w", d.Name, err)
		}
	}

	return store, nil
}

// Flags returns the match flags selected by the exact_* keys.
func (m Match) Flags() ap.MatchFlag {
	var flags ap.MatchFlag
	if m.ExactFormat {
		flags |= ap.MATCH_EXACT_FORMAT
	}

	if m.ExactChannelMask {
		flags |= ap.MATCH_EXACT_CHANNEL_MASK
	}

	return flags
}

// Formats returns the parsed preferred formats in preference order.
func (m Match) Formats() ([]ap.Format, error) {
	return parseFormats(m.PreferredFormats)
}

// ChannelMasks returns the parsed preferred channel masks in preference order.
func (m Match) ChannelMasks() ([]ap.ChannelMask, error) {
	return parseChannelMasks(m.PreferredChannelMasks)
}

func (p Profile) profile() (*ap.Profile, error) {
	formats, err := parseFormats([]string{p.Format})
	if err != nil {
		return nil, err
	}

	for _, r := range p.Rates {
		if r == 0 {
			return nil, fmt.Errorf("rate 0: %w", ap.ErrBadValue)
		}
	}

	masks, err := parseChannelMasks(p.ChannelMasks)
	if err != nil {
		return nil, err
	}

	return ap.NewProfile(formats[0], ap.NewChannelMaskSet(masks...), ap.NewSampleRateSet(p.Rates...)), nil
}

func (p *Probe) capabilities() (ap.RangeCapabilities, error) {
	formats, err := parseFormats(p.Formats)
	if err != nil {
		return ap.RangeCapabilities{}, fmt.Errorf("formats: %w", err)
	}

	if len(formats) == 0 {
		return ap.RangeCapabilities{}, errors.New("formats must be set")
	}

	caps := ap.RangeCapabilities{
		FormatList:  formats,
		MinRate:     p.MinRate,
		MaxRate:     p.MaxRate,
		MinChannels: p.MinChannels,
		MaxChannels: p.MaxChannels,
	}

	if _, err := ap.ProfilesFromCapabilities(caps); err != nil {
		return ap.RangeCapabilities{}, err
	}

	return caps, nil
}

func parseFormats(names []string) ([]ap.Format, error) {
	formats := make([]ap.Format, 0, len(names))
	for _, name := range names {
		f, err := ap.ParseFormat(name)
		if err != nil {
			return nil, err
		}

		if !f.IsValid() {
			return nil, fmt.Errorf("format %q: %w", name, ap.ErrBadValue)
		}

		formats = append(formats, f)
	}

	return formats, nil
}

func parseChannelMasks(names []string) ([]ap.ChannelMask, error) {
	masks := make([]ap.ChannelMask, 0, len(names))
	for _, name := range names {
		m, err := ap.ParseChannelMask(name)
		if err != nil {
			return nil, err
		}

		if !m.IsValid() {
			return nil, fmt.Errorf("channel mask %q: %w", name, ap.ErrBadValue)
		}

		masks = append(masks, m)
	}

	return masks, nil
}
