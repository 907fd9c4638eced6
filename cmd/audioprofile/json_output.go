package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
)

type configJSON struct {
	Rate        uint32 `json:"rate"`
	ChannelMask string `json:"channel_mask"`
	Channels    uint32 `json:"channels"`
	Format      string `json:"format"`
}

func newConfigJSON(c ap.Config) configJSON {
	return configJSON{
		Rate:        c.Rate,
		ChannelMask: c.ChannelMask.String(),
		Channels:    c.ChannelMask.Count(),
		Format:      c.Format.String(),
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
