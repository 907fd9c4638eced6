package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
)

// requestFlags describes the stream configuration a command asks a device for.
type requestFlags struct {
	rate     uint32
	channels string
	format   string
}

func (r *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32VarP(&r.rate, "rate", "r", 48000, "Sample rate in Hz")
	cmd.Flags().StringVarP(&r.channels, "channels", "n", "stereo", "Channel mask name, INDEX_MASK_<n> or number")
	cmd.Flags().StringVarP(&r.format, "format", "f", "PCM_16_BIT", "Sample format name or number")
}

func (r *requestFlags) config() (ap.Config, error) {
	format, err := ap.ParseFormat(r.format)
	if err != nil {
		return ap.Config{}, fmt.Errorf("--format: %w", err)
	}

	mask, err := ap.ParseChannelMask(r.channels)
	if err != nil {
		return ap.Config{}, fmt.Errorf("--channels: %w", err)
	}

	return ap.Config{Rate: r.rate, ChannelMask: mask, Format: format}, nil
}
