package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	ac3 "github.com/llehouerou/go-ac3"
)

func (c *CLI) newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the header, output layout and decode outcome of the first frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, dec, _, err := c.decodeFirst(args[0], outputFormat(c.cfg.Format))
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), info, dec)
			return nil
		},
	}
}

func printInfo(w io.Writer, info *ac3.FrameInfo, dec *ac3.Decoder) {
	h := info.Header
	codec := "AC-3"
	if h.BitstreamID > 10 {
		codec = "E-AC-3"
	}
	fmt.Fprintf(w, "frame:    %s bsid %d, %s, %d Hz, %d bit/s, %d bytes, %d blocks\n",
		codec, h.BitstreamID, h.FrameType, h.SampleRate, h.BitRate, h.FrameSize, h.NumBlocks)
	fmt.Fprintf(w, "coded:    %s (%d channels), service %s, dialnorm -%d dB\n",
		layoutName(h.ChannelMode, h.LFE), h.Channels, info.ServiceType, dialnorm(h.DialNorm))

	if plan, ok := dec.Plan(); ok {
		mix := "passthrough"
		if plan.Downmix != nil {
			mix = "downmix"
		}
		names := make([]string, len(plan.Positions))
		for i, p := range plan.Positions {
			names[i] = p.String()
		}
		fmt.Fprintf(w, "output:   %d channels, %s, %s, %s\n",
			plan.OutChannels, plan.OutputMode, mix, strings.Join(names, " "))
	}

	fmt.Fprintf(w, "status:   %s", info.Status)
	if info.Error != ac3.ErrNone {
		fmt.Fprintf(w, " (%s)", info.Error)
	}
	fmt.Fprintf(w, ", %d bytes consumed, %d bytes written\n", info.BytesConsumed, info.BytesWritten)
	if info.ByteSwapped {
		fmt.Fprintln(w, "note:     input is byte-swapped")
	}
}

func layoutName(mode ac3.ChannelMode, lfe bool) string {
	if lfe {
		return mode.String() + "+LFE"
	}
	return mode.String()
}

// dialnorm maps the coded value to its attenuation; 0 is reserved and
// means -31 dB.
func dialnorm(v uint8) uint8 {
	if v == 0 {
		return 31
	}
	return v
}
