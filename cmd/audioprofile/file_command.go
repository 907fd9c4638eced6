package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
)

type fileJSON struct {
	File       string     `json:"file"`
	Device     string     `json:"device"`
	Duration   string     `json:"duration,omitempty"`
	Source     configJSON `json:"source"`
	Result     configJSON `json:"result"`
	Conversion []string   `json:"conversion,omitempty"`
}

func newFileCommand(ctx *commandContext) *cobra.Command {
	var match matchFlags

	cmd := &cobra.Command{
		Use:     "file <audio-file> <device>",
		Aliases: []string{"wav"},
		Short:   "Negotiate the stream of a WAV or MP3 file against a device",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open audio file: %w", err)
			}
			defer file.Close()

			src, err := openSource(path, file)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			req, err := sourceConfig(src)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			d, err := ctx.device(args[1])
			if err != nil {
				return err
			}

			result, err := negotiate(ctx, d, req, match.resolve(cmd, ctx))
			if err != nil {
				return err
			}

			var duration string
			if dur, err := src.Duration(); err == nil {
				duration = dur.String()
			} else {
				ctx.logger.Debug("duration unavailable", "file", path, "error", err)
			}

			if ctx.jsonFlag {
				return writeJSON(cmd, fileJSON{
					File:       path,
					Device:     d.name,
					Duration:   duration,
					Source:     newConfigJSON(req),
					Result:     newConfigJSON(result),
					Conversion: conversionSteps(req, result),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s\n", path, d.name)
			fmt.Fprintln(cmd.OutOrStdout(), renderNegotiation("Source", req, result))
			if steps := conversionSteps(req, result); len(steps) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "conversion required: %s\n", strings.Join(steps, ", "))
			}

			return nil
		},
	}

	match.register(cmd)

	return cmd
}

// conversionSteps lists what a client has to do to its frames to play req through result.
func conversionSteps(req, result ap.Config) []string {
	from, to := req.AudioFormat(), result.AudioFormat()

	var steps []string
	if from.SampleRate != to.SampleRate {
		steps = append(steps, fmt.Sprintf("resample %d -> %d Hz", from.SampleRate, to.SampleRate))
	}

	if from.NumChannels != to.NumChannels || req.ChannelMask != result.ChannelMask {
		steps = append(steps, fmt.Sprintf("remix %d -> %d channels", from.NumChannels, to.NumChannels))
	}

	if req.Format != result.Format {
		steps = append(steps, fmt.Sprintf("convert %s -> %s", req.Format, result.Format))
	}

	return steps
}
