package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
)

type negotiationJSON struct {
	Device  string     `json:"device"`
	Request configJSON `json:"request"`
	Result  configJSON `json:"result"`
}

// matchFlags holds the --exact-* overrides of the [match] defaults.
type matchFlags struct {
	exactFormat   bool
	exactChannels bool
}

func (m *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&m.exactFormat, "exact-format", false, "Do not substitute equivalent PCM formats")
	cmd.Flags().BoolVar(&m.exactChannels, "exact-channels", false, "Do not substitute channel masks")
}

func (m *matchFlags) resolve(cmd *cobra.Command, ctx *commandContext) ap.MatchFlag {
	flags := ctx.file.Match.Flags()

	if cmd.Flags().Changed("exact-format") {
		flags &^= ap.MATCH_EXACT_FORMAT
		if m.exactFormat {
			flags |= ap.MATCH_EXACT_FORMAT
		}
	}

	if cmd.Flags().Changed("exact-channels") {
		flags &^= ap.MATCH_EXACT_CHANNEL_MASK
		if m.exactChannels {
			flags |= ap.MATCH_EXACT_CHANNEL_MASK
		}
	}

	return flags
}

func newCompatibleCommand(ctx *commandContext) *cobra.Command {
	var req requestFlags
	var match matchFlags

	cmd := &cobra.Command{
		Use:   "compatible <device>",
		Short: "Find the device configuration closest to a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ctx.device(args[0])
			if err != nil {
				return err
			}

			cfg, err := req.config()
			if err != nil {
				return err
			}

			result, err := negotiate(ctx, d, cfg, match.resolve(cmd, ctx))
			if err != nil {
				return err
			}

			if ctx.jsonFlag {
				return writeJSON(cmd, negotiationJSON{Device: d.name, Request: newConfigJSON(cfg), Result: newConfigJSON(result)})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderNegotiation("Requested", cfg, result))

			return nil
		},
	}

	req.register(cmd)
	match.register(cmd)

	return cmd
}

func negotiate(ctx *commandContext, d *device, req ap.Config, flags ap.MatchFlag) (ap.Config, error) {
	result, err := ap.CheckCompatibleProfile(d.store, req, d.portType, d.role, flags)
	if err != nil {
		return ap.Config{}, fmt.Errorf("device %s: %w", d.name, err)
	}

	ctx.logger.Debug("compatible configuration",
		"device", d.name,
		"port_type", d.portType.String(),
		"role", d.role.String(),
		"request", req.String(),
		"result", result.String(),
	)

	return result, nil
}

func renderNegotiation(label string, req, result ap.Config) string {
	rows := [][]string{
		{"Rate", fmt.Sprintf("%d", req.Rate), fmt.Sprintf("%d", result.Rate)},
		{"Channel mask", req.ChannelMask.String(), result.ChannelMask.String()},
		{"Channels", fmt.Sprintf("%d", req.ChannelMask.Count()), fmt.Sprintf("%d", result.ChannelMask.Count())},
		{"Format", req.Format.String(), result.Format.String()},
	}

	return renderTable([]tableColumn{leftColumn(""), rightColumn(label), rightColumn("Negotiated")}, rows)
}
