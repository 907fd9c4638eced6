package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
	"github.com/gen2brain/audioprofile/internal/capfile"
	"github.com/gen2brain/audioprofile/internal/logging"
)

type commandContext struct {
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
	jsonFlag      bool

	file    *capfile.File
	logger  *slog.Logger
	devices map[string]*device
}

// device bundles a declared device with the store built from it.
type device struct {
	name     string
	portType ap.PortType
	role     ap.PortRole
	store    *ap.ProfileStore
}

func (c *commandContext) load(cmd *cobra.Command) error {
	path := strings.TrimSpace(c.configFlag)
	if path == "" {
		return errors.New("no capability file, pass --config")
	}

	file, err := capfile.Load(path)
	if err != nil {
		return err
	}

	level := file.Logging.Level
	if c.logLevelFlag != "" {
		level = c.logLevelFlag
	}

	format := file.Logging.Format
	if c.logFormatFlag != "" {
		format = c.logFormatFlag
	}

	logger, err := logging.New(logging.Options{Level: level, Format: format, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	c.file = file
	c.logger = logger.With("config", path)
	c.logger.Debug("capability file loaded", "devices", len(file.Devices))

	return nil
}

// device returns the named device with a store the caller may modify.
func (c *commandContext) device(name string) (*device, error) {
	cached, ok := c.devices[name]
	if !ok {
		built, err := c.buildDevice(name)
		if err != nil {
			return nil, err
		}

		if c.devices == nil {
			c.devices = make(map[string]*device)
		}
		c.devices[name] = built
		cached = built
	}

	d := *cached
	d.store = cached.store.Clone()

	return &d, nil
}

func (c *commandContext) buildDevice(name string) (*device, error) {
	d, err := c.file.Device(name)
	if err != nil {
		return nil, err
	}

	portType, role, err := d.Port()
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", name, err)
	}

	store, err := d.Store()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("device store built", "device", name, "profiles", store.Len(), "dynamic", store.HasDynamicProfile())

	return &device{name: d.Name, portType: portType, role: role, store: store}, nil
}
