package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	ap "github.com/gen2brain/audioprofile"
)

type profileJSON struct {
	Format       string   `json:"format"`
	Rates        []uint32 `json:"rates"`
	ChannelMasks []string `json:"channel_masks"`
	Dynamic      bool     `json:"dynamic"`
}

type deviceJSON struct {
	Name     string        `json:"name"`
	PortType string        `json:"port_type"`
	Role     string        `json:"role"`
	Profiles []profileJSON `json:"profiles"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "show [device...]",
		Short: "Show the profiles declared for devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = ctx.file.DeviceNames()
			}

			devices := make([]*device, 0, len(names))
			for _, name := range names {
				d, err := ctx.device(name)
				if err != nil {
					return err
				}
				if static {
					d.store.ClearDynamicProfiles()
				}
				devices = append(devices, d)
			}

			if ctx.jsonFlag {
				out := make([]deviceJSON, 0, len(devices))
				for _, d := range devices {
					out = append(out, newDeviceJSON(d))
				}
				return writeJSON(cmd, out)
			}

			for i, d := range devices {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s %s)\n", d.name, d.portType, d.role)
				fmt.Fprintln(cmd.OutOrStdout(), renderStore(d.store))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "Hide probed and format-only profiles")

	return cmd
}

func newDeviceJSON(d *device) deviceJSON {
	out := deviceJSON{
		Name:     d.name,
		PortType: d.portType.String(),
		Role:     d.role.String(),
		Profiles: []profileJSON{},
	}

	for _, p := range d.store.Profiles() {
		masks := make([]string, 0, len(p.ChannelMasks()))
		for _, m := range p.ChannelMasks() {
			masks = append(masks, m.String())
		}

		out.Profiles = append(out.Profiles, profileJSON{
			Format:       p.Format().String(),
			Rates:        p.SampleRates(),
			ChannelMasks: masks,
			Dynamic:      p.IsDynamic(),
		})
	}

	return out
}

func renderStore(store *ap.ProfileStore) string {
	if store.IsEmpty() {
		return "no profiles (accepts any configuration)"
	}

	rows := make([][]string, 0, store.Len())
	for i, p := range store.Profiles() {
		rates := "any"
		if p.HasValidRates() {
			values := make([]string, 0, len(p.SampleRates()))
			for _, r := range p.SampleRates() {
				values = append(values, strconv.FormatUint(uint64(r), 10))
			}
			rates = strings.Join(values, ", ")
		}

		masks := "any"
		if p.HasValidChannels() {
			values := make([]string, 0, len(p.ChannelMasks()))
			for _, m := range p.ChannelMasks() {
				values = append(values, strings.TrimPrefix(m.String(), "AUDIO_CHANNEL_"))
			}
			masks = strings.Join(values, ", ")
		}

		dynamic := ""
		if p.IsDynamic() {
			dynamic = "yes"
		}

		rows = append(rows, []string{
			strconv.Itoa(i),
			strings.TrimPrefix(p.Format().String(), "AUDIO_FORMAT_"),
			rates,
			masks,
			dynamic,
		})
	}

	columns := []tableColumn{
		rightColumn("#"),
		leftColumn("Format"),
		leftColumn("Rates"),
		leftColumn("Channel masks"),
		leftColumn("Dynamic"),
	}

	return renderTable(columns, rows)
}
