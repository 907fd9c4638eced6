package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
)

type checkFunc func(store *ap.ProfileStore, rate uint32, mask ap.ChannelMask, format ap.Format) error

type checkJSON struct {
	Device  string     `json:"device"`
	Request configJSON `json:"request"`
	Match   bool       `json:"match"`
	Error   string     `json:"error,omitempty"`
}

func newExactCommand(ctx *commandContext) *cobra.Command {
	return newCheckCommand(ctx, "exact", "Check that a device accepts a configuration", ap.CheckExactProfile)
}

func newIdenticalCommand(ctx *commandContext) *cobra.Command {
	return newCheckCommand(ctx, "identical", "Check that a device explicitly declares a configuration", ap.CheckIdenticalProfile)
}

func newCheckCommand(ctx *commandContext, name, short string, check checkFunc) *cobra.Command {
	var req requestFlags

	cmd := &cobra.Command{
		Use:   name + " <device>",
		Short: short,
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

			checkErr := check(d.store, cfg.Rate, cfg.ChannelMask, cfg.Format)
			ctx.logger.Debug("profile check", "check", name, "device", d.name, "request", cfg.String(), "match", checkErr == nil)

			if ctx.jsonFlag {
				out := checkJSON{Device: d.name, Request: newConfigJSON(cfg), Match: checkErr == nil}
				if checkErr != nil {
					out.Error = checkErr.Error()
				}
				if err := writeJSON(cmd, out); err != nil {
					return err
				}
			} else {
				colorize := shouldColorize(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), renderResult(d.name, checkErr == nil, cfg.String(), colorize))
			}

			if checkErr != nil {
				return fmt.Errorf("%s %s: %w", name, d.name, checkErr)
			}

			return nil
		},
	}

	req.register(cmd)

	return cmd
}
