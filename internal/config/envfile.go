package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"
)

// DefaultEnvFile is read from the working directory when AC3_ENV_FILE is
// not set.
const DefaultEnvFile = ".ac3frame.env"

// WithEnvFile returns a Lookuper that consults env first and then the
// KEY=value pairs of a dotenv file. The file is named by AC3_ENV_FILE in
// env, or DefaultEnvFile. A missing default file is not an error; a
// missing file named explicitly is.
func WithEnvFile(afs afero.Fs, env envconfig.Lookuper) (envconfig.Lookuper, error) {
	path, explicit := env.Lookup(Prefix + "ENV_FILE")
	if !explicit || path == "" {
		path, explicit = DefaultEnvFile, false
	}

	f, err := afs.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return env, nil
		}
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return envconfig.MultiLookuper(env, envconfig.MapLookuper(vars)), nil
}
