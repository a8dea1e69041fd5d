//go:build ignore

// This script generates reference AC-3 and E-AC-3 streams for decoder
// testing.
// Run with: go run testdata/generate.go
//
// Requirements: FFmpeg must be installed and available in PATH.
//
// Generated test data structure:
//   testdata/generated/
//   ├── ac3/
//   │   ├── 48000_stereo_192k/
//   │   │   ├── sine1k.ac3
//   │   │   └── sine1k.json
//   │   └── ...
//   └── eac3/
//       └── ...

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// TestConfig describes one encoder configuration.
type TestConfig struct {
	Codec      string `json:"codec"` // "ac3" or "eac3"
	SampleRate int    `json:"sample_rate"`
	Layout     string `json:"layout"`   // FFmpeg channel layout
	Channels   int    `json:"channels"` // coded channels including LFE
	LFE        bool   `json:"lfe"`
	Bitrate    int    `json:"bitrate"` // kbps
}

var ac3Configs = []TestConfig{
	{"ac3", 48000, "mono", 1, false, 96},
	{"ac3", 48000, "stereo", 2, false, 192},
	{"ac3", 44100, "stereo", 2, false, 192},
	{"ac3", 32000, "stereo", 2, false, 128},
	{"ac3", 48000, "3.0", 3, false, 256},
	{"ac3", 48000, "quad", 4, false, 320},
	{"ac3", 48000, "5.0", 5, false, 384},
	{"ac3", 48000, "5.1", 6, true, 448},
	{"ac3", 48000, "2.1", 3, true, 224},
}

var eac3Configs = []TestConfig{
	{"eac3", 48000, "stereo", 2, false, 96},
	{"eac3", 48000, "5.1", 6, true, 256},
	{"eac3", 44100, "5.1", 6, true, 384},
	{"eac3", 32000, "mono", 1, false, 64},
}

var audioTypes = map[string]string{
	"silence": "anullsrc=r=%d",
	"sine1k":  "sine=frequency=1000:sample_rate=%d",
	"noise":   "anoisesrc=r=%d:a=0.3",
}

func main() {
	if err := checkFFmpeg(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Please install FFmpeg: https://ffmpeg.org/download.html\n")
		os.Exit(1)
	}

	baseDir := filepath.Join("testdata", "generated")
	for _, cfgs := range [][]TestConfig{ac3Configs, eac3Configs} {
		for _, cfg := range cfgs {
			dir := filepath.Join(baseDir, cfg.Codec,
				fmt.Sprintf("%d_%s_%dk", cfg.SampleRate, cfg.Layout, cfg.Bitrate))
			if err := os.MkdirAll(dir, 0755); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", dir, err)
				continue
			}
			for name, source := range audioTypes {
				if err := generateTestCase(dir, name, source, cfg); err != nil {
					fmt.Fprintf(os.Stderr, "Error generating %s/%s: %v\n", dir, name, err)
				} else {
					fmt.Printf("Generated %s/%s\n", dir, name)
				}
			}
		}
	}

	fmt.Println("\nDone!")
}

func checkFFmpeg() error {
	cmd := exec.Command("ffmpeg", "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	return nil
}

func generateTestCase(dir, name, source string, cfg TestConfig) error {
	streamPath := filepath.Join(dir, name+"."+cfg.Codec)
	jsonPath := filepath.Join(dir, name+".json")

	if fileExists(streamPath) && fileExists(jsonPath) {
		return nil
	}

	// One second of audio, raw elementary stream.
	cmd := exec.Command("ffmpeg", "-y", "-loglevel", "error",
		"-f", "lavfi", "-i", fmt.Sprintf(source, cfg.SampleRate),
		"-t", "1",
		"-af", "aformat=channel_layouts="+cfg.Layout,
		"-c:a", cfg.Codec,
		"-b:a", fmt.Sprintf("%dk", cfg.Bitrate),
		"-f", cfg.Codec,
		streamPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, out)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(jsonPath, data, 0644)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
