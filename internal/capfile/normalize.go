package capfile

import (
	"slices"
	"strings"
)

func (f *File) normalize() {
	f.Logging.Level = strings.ToLower(strings.TrimSpace(f.Logging.Level))
	if f.Logging.Level == "" {
		f.Logging.Level = defaultLogLevel
	}

	f.Logging.Format = strings.ToLower(strings.TrimSpace(f.Logging.Format))
	if f.Logging.Format == "" {
		f.Logging.Format = defaultLogFormat
	}

	f.Match.PreferredFormats = trimAll(f.Match.PreferredFormats)
	if len(f.Match.PreferredFormats) == 0 {
		f.Match.PreferredFormats = slices.Clone(defaultPreferredFormats)
	}

	f.Match.PreferredChannelMasks = trimAll(f.Match.PreferredChannelMasks)
	if len(f.Match.PreferredChannelMasks) == 0 {
		f.Match.PreferredChannelMasks = slices.Clone(defaultPreferredChannelMasks)
	}

	for i := range f.Devices {
		f.Devices[i].normalize()
	}
}

func (d *Device) normalize() {
	d.Name = strings.TrimSpace(d.Name)

	d.PortType = strings.ToLower(strings.TrimSpace(d.PortType))
	if d.PortType == "" {
		d.PortType = defaultPortType
	}

	d.Role = strings.ToLower(strings.TrimSpace(d.Role))
	if d.Role == "" {
		d.Role = defaultRole
	}

	d.Formats = trimAll(d.Formats)

	for i := range d.Profiles {
		d.Profiles[i].Format = strings.TrimSpace(d.Profiles[i].Format)
		d.Profiles[i].ChannelMasks = trimAll(d.Profiles[i].ChannelMasks)
	}

	if d.Probe != nil {
		d.Probe.Formats = trimAll(d.Probe.Formats)
	}
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
