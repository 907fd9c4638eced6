package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
	"github.com/gen2brain/audioprofile/internal/capfile"
)

type resolutionJSON struct {
	Input  string     `json:"input"`
	Output string     `json:"output"`
	Result configJSON `json:"result"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var preferredFormats []string
	var preferredChannels []string
	var lower bool

	cmd := &cobra.Command{
		Use:   "resolve <input-device> <output-device>",
		Short: "Pick the configuration an output should use for content from an input",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := ctx.device(args[0])
			if err != nil {
				return err
			}

			out, err := ctx.device(args[1])
			if err != nil {
				return err
			}

			match := ctx.file.Match
			if len(preferredFormats) > 0 {
				match.PreferredFormats = preferredFormats
			}
			if len(preferredChannels) > 0 {
				match.PreferredChannelMasks = preferredChannels
			}
			if cmd.Flags().Changed("lower") {
				match.PreferHigherSamplingRates = !lower
			}

			result, err := resolve(ctx, in, out, match)
			if err != nil {
				return err
			}

			if ctx.jsonFlag {
				return writeJSON(cmd, resolutionJSON{Input: in.name, Output: out.name, Result: newConfigJSON(result)})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n", in.name, out.name, result)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&preferredFormats, "prefer-formats", nil, "Formats in preference order")
	cmd.Flags().StringSliceVar(&preferredChannels, "prefer-channels", nil, "Channel masks in preference order")
	cmd.Flags().BoolVar(&lower, "lower", false, "Prefer the lowest common sample rate")

	return cmd
}

func resolve(ctx *commandContext, in, out *device, match capfile.Match) (ap.Config, error) {
	formats, err := match.Formats()
	if err != nil {
		return ap.Config{}, fmt.Errorf("preferred formats: %w", err)
	}

	masks, err := match.ChannelMasks()
	if err != nil {
		return ap.Config{}, fmt.Errorf("preferred channel masks: %w", err)
	}

	result, err := ap.FindBestMatchingOutputConfig(in.store, out.store, formats, masks, match.PreferHigherSamplingRates)
	if err != nil {
		return ap.Config{}, fmt.Errorf("resolve %s -> %s: %w", in.name, out.name, err)
	}

	ctx.logger.Debug("output configuration resolved",
		"input", in.name,
		"output", out.name,
		"prefer_higher_rates", match.PreferHigherSamplingRates,
		"result", result.String(),
	)

	return result, nil
}
