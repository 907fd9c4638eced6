// Package capfile loads device capability declarations from TOML files.
//
// A capability file describes one or more devices: the formats they declare statically,
// explicit profiles, and the result of a hardware probe expressed as rate and channel
// ranges. Each device is turned into an audioprofile.ProfileStore with Store.
package capfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	ap "github.com/gen2brain/audioprofile"
)

// ErrUnknownDevice is returned when a device name is not declared in the file.
var ErrUnknownDevice = errors.New("unknown device")

// Logging contains logger settings for the command line tool.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Match contains the defaults used when negotiating configurations.
type Match struct {
	ExactFormat               bool     `toml:"exact_format"`
	ExactChannelMask          bool     `toml:"exact_channel_mask"`
	PreferHigherSamplingRates bool     `toml:"prefer_higher_sampling_rates"`
	PreferredFormats          []string `toml:"preferred_formats"`
	PreferredChannelMasks     []string `toml:"preferred_channel_masks"`
}

// Profile is an explicit profile declaration. Empty rates or channel masks accept any value.
type Profile struct {
	Format       string   `toml:"format"`
	Rates        []uint32 `toml:"rates"`
	ChannelMasks []string `toml:"channel_masks"`
	Dynamic      bool     `toml:"dynamic"`
}

// Probe holds capabilities reported by a hardware query.
// A zero max_rate or max_channels leaves that dimension unconstrained.
type Probe struct {
	Formats     []string `toml:"formats"`
	MinRate     uint32   `toml:"min_rate"`
	MaxRate     uint32   `toml:"max_rate"`
	MinChannels uint32   `toml:"min_channels"`
	MaxChannels uint32   `toml:"max_channels"`
}

// Device declares the capabilities of one port.
type Device struct {
	Name     string    `toml:"name"`
	PortType string    `toml:"port_type"`
	Role     string    `toml:"role"`
	Formats  []string  `toml:"formats"`
	Profiles []Profile `toml:"profile"`
	Probe    *Probe    `toml:"probe"`
}

// File is a parsed capability file.
type File struct {
	Logging Logging  `toml:"logging"`
	Match   Match    `toml:"match"`
	Devices []Device `toml:"device"`
}

// Load reads, normalizes and validates the capability file at path.
func Load(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capability file: %w", err)
	}
	defer file.Close()

	f := Default()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse capability file: %w", err)
	}

	return finish(&f)
}

// Parse is Load for in-memory data.
func Parse(data []byte) (*File, error) {
	f := Default()

	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse capability file: %w", err)
	}

	return finish(&f)
}

func finish(f *File) (*File, error) {
	f.normalize()

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Device returns the device declared under name.
func (f *File) Device(name string) (*Device, error) {
	for i := range f.Devices {
		if f.Devices[i].Name == name {
			return &f.Devices[i], nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownDevice)
}

// Store builds the profile store of the device declared under name.
func (f *File) Store(name string) (*ap.ProfileStore, error) {
	d, err := f.Device(name)
	if err != nil {
		return nil, err
	}

	return d.Store()
}

// DeviceNames returns the declared device names in file order.
func (f *File) DeviceNames() []string {
	names := make([]string, 0, len(f.Devices))
	for _, d := range f.Devices {
		names = append(names, d.Name)
	}

	return names
}
