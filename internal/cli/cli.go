// Package cli implements the ac3frame command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	ac3 "github.com/llehouerou/go-ac3"
	"github.com/llehouerou/go-ac3/internal/config"
)

// CLI represents the command-line interface.
type CLI struct {
	fs  afero.Fs
	env envconfig.Lookuper

	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

// New creates a CLI reading files from fs and defaults from env.
func New(fs afero.Fs, env envconfig.Lookuper) *CLI {
	return &CLI{fs: fs, env: env}
}

// Run executes the command line args (without the program name) and
// returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env, err := config.WithEnvFile(c.fs, c.env)
	if err != nil {
		fmt.Fprintf(stderr, "ac3frame: %v\n", err)
		return 2
	}
	cfg, err := config.NewConfigFromLookuper(ctx, env)
	if err != nil {
		fmt.Fprintf(stderr, "ac3frame: %v\n", err)
		return 2
	}
	c.cfg = cfg
	defer c.closeLog()

	root := c.newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if c.logger != nil {
			c.logger.Error("command failed", "error", err)
		}
		return 1
	}
	return 0
}

func (c *CLI) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ac3frame",
		Short: "Inspect and decode a single AC-3 or E-AC-3 frame",
		Long: "ac3frame validates the first AC-3 or E-AC-3 frame of a file, " +
			"reports its header and output layout, and decodes it to PCM.\n\n" +
			"Flag defaults are read from AC3_* environment variables and from " +
			"the dotenv file named by AC3_ENV_FILE (default " + config.DefaultEnvFile + ").",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setupLogging(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.IntVarP(&c.cfg.Channels, "channels", "c", c.cfg.Channels, "downmix to 1 or 2 channels (0 keeps the coded layout)")
	flags.IntVar(&c.cfg.FallbackChannels, "fallback-channels", c.cfg.FallbackChannels, "output channels for a damaged frame with no prior layout")
	flags.BoolVar(&c.cfg.Strict, "strict", c.cfg.Strict, "verify the frame CRC")
	flags.StringVarP(&c.cfg.Format, "format", "f", c.cfg.Format, "raw PCM format: s16le or f32le")
	flags.StringVar(&c.cfg.Log.File, "log-file", c.cfg.Log.File, "append logs to a rotating file instead of stderr")
	flags.BoolVarP(&c.cfg.Verbose, "verbose", "v", c.cfg.Verbose, "log per-frame diagnostics")

	root.AddCommand(c.newInspectCommand())
	root.AddCommand(c.newDecodeCommand())
	return root
}

// setupLogging installs a text handler on stderr or, when a log file is
// configured, on a lumberjack-rotated file.
func (c *CLI) setupLogging(stderr io.Writer) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if c.cfg.Verbose {
		level = slog.LevelDebug
	}

	w := stderr
	if c.cfg.Log.File != "" {
		// lumberjack opens and rotates its files on the OS filesystem,
		// not on c.fs.
		lj := &lumberjack.Logger{
			Filename:   c.cfg.Log.File,
			MaxSize:    c.cfg.Log.MaxSizeMB,
			MaxBackups: c.cfg.Log.MaxBackups,
			MaxAge:     c.cfg.Log.MaxAgeDays,
			Compress:   c.cfg.Log.Compress,
		}
		c.logFile = lj
		w = lj
	}
	c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	c.logger.Debug("logging setup completed", "level", level.String(), "file", c.cfg.Log.File)
	return nil
}

func (c *CLI) closeLog() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			slog.Error("error closing log file", "error", err)
		}
		c.logFile = nil
	}
}

// decoderConfig maps the CLI configuration onto the decoder's.
func (c *CLI) decoderConfig(format ac3.OutputFormat) ac3.Config {
	cfg := ac3.Config{
		OutputFormat:    format,
		RequestChannels: c.cfg.Channels,
		Channels:        c.cfg.FallbackChannels,
		Strictness:      ac3.StrictnessNone,
	}
	if c.cfg.Strict {
		cfg.Strictness = ac3.StrictnessCareful
	}
	return cfg
}

func outputFormat(name string) ac3.OutputFormat {
	if name == config.FormatF32LE {
		return ac3.OutputFormatFloat32
	}
	return ac3.OutputFormatInt16
}

// readFrame reads the start of path, up to the largest possible frame.
func (c *CLI) readFrame(path string) ([]byte, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	buf := make([]byte, ac3.MaxFrameSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read input: %s is empty", path)
		}
		return nil, fmt.Errorf("read input: %w", err)
	}
	c.logger.Debug("input read", "path", path, "bytes", n)
	return buf[:n], nil
}

// decodeFirst decodes the first frame of path in format.
func (c *CLI) decodeFirst(path string, format ac3.OutputFormat) (*ac3.FrameInfo, *ac3.Decoder, []byte, error) {
	input, err := c.readFrame(path)
	if err != nil {
		return nil, nil, nil, err
	}
	dec := ac3.NewDecoder(
		ac3.WithConfig(c.decoderConfig(format)),
		ac3.WithLogger(c.logger),
	)
	pcm := make([]byte, ac3.MaxOutputSize)
	info, err := dec.DecodeFrame(input, pcm)
	if err != nil {
		return info, dec, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return info, dec, pcm[:info.BytesWritten], nil
}
