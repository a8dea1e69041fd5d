package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/youpy/go-wav"

	ac3 "github.com/llehouerou/go-ac3"
)

var (
	errNoAudio           = errors.New("frame produced no audio")
	errUnknownSampleRate = errors.New("sample rate unknown, cannot write WAV")
)

func (c *CLI) newDecodeCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode FILE -o OUT",
		Short: "Decode the first frame to a WAV file, or raw PCM when OUT does not end in .wav",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isWAV(out) {
				return c.decodeWAV(cmd, args[0], out)
			}
			return c.decodeRaw(cmd, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func isWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// decodeWAV writes 16-bit PCM in a WAV container. The format flag does not
// apply.
func (c *CLI) decodeWAV(cmd *cobra.Command, in, out string) error {
	info, _, pcm, err := c.decodeFirst(in, ac3.OutputFormatInt16)
	if err != nil {
		return err
	}
	if err := checkAudio(info); err != nil {
		return err
	}
	if info.SampleRate == 0 {
		return errUnknownSampleRate
	}

	f, err := c.fs.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := wav.NewWriter(f, uint32(info.Samples), uint16(info.Channels), info.SampleRate, 16)
	if _, err := w.Write(pcm); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	c.report(cmd, info, out)
	return nil
}

func (c *CLI) decodeRaw(cmd *cobra.Command, in, out string) error {
	info, _, pcm, err := c.decodeFirst(in, outputFormat(c.cfg.Format))
	if err != nil {
		return err
	}
	if err := checkAudio(info); err != nil {
		return err
	}
	if err := afero.WriteFile(c.fs, out, pcm, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.report(cmd, info, out)
	return nil
}

func checkAudio(info *ac3.FrameInfo) error {
	if info.BytesWritten == 0 {
		return fmt.Errorf("%w: %s", errNoAudio, info.Error)
	}
	return nil
}

func (c *CLI) report(cmd *cobra.Command, info *ac3.FrameInfo, out string) {
	if info.Status != ac3.StatusOK {
		c.logger.Warn("frame concealed", "reason", info.Error.Error(), "blocks_concealed", info.BlocksConcealed)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples x %d channels at %d Hz (%s)\n",
		out, info.Samples, info.Channels, info.SampleRate, info.Status)
}
