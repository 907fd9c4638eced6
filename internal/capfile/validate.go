package capfile

import (
	"errors"
	"fmt"
)

// Validate ensures every declaration can be turned into profiles.
func (f *File) Validate() error {
	switch f.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", f.Logging.Format)
	}

	if _, err := f.Match.Formats(); err != nil {
		return fmt.Errorf("match.preferred_formats: %w", err)
	}

	if _, err := f.Match.ChannelMasks(); err != nil {
		return fmt.Errorf("match.preferred_channel_masks: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Devices))
	for i, d := range f.Devices {
		if d.Name == "" {
			return fmt.Errorf("device[%d]: name must be set", i)
		}

		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("device %q: declared more than once", d.Name)
		}
		seen[d.Name] = struct{}{}

		if err := d.validate(); err != nil {
			return fmt.Errorf("device %q: %w", d.Name, err)
		}
	}

	return nil
}

func (d *Device) validate() error {
	if _, _, err := d.Port(); err != nil {
		return err
	}

	if _, err := parseFormats(d.Formats); err != nil {
		return fmt.Errorf("formats: %w", err)
	}

	for i, p := range d.Profiles {
		if _, err := p.profile(); err != nil {
			return fmt.Errorf("profile[%d]: %w", i, err)
		}
	}

	if d.Probe != nil {
		if _, err := d.Probe.capabilities(); err != nil {
			return fmt.Errorf("probe: %w", err)
		}
	}

	if len(d.Formats) == 0 && len(d.Profiles) == 0 && d.Probe == nil {
		return errors.New("declares no format, profile or probe")
	}

	return nil
}
