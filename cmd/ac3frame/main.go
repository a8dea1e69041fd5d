// Command ac3frame inspects and decodes the first AC-3 or E-AC-3 frame of
// a file.
package main

import (
	"context"
	"os"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"

	"github.com/llehouerou/go-ac3/internal/cli"
)

func main() {
	c := cli.New(afero.NewOsFs(), envconfig.OsLookuper())
	os.Exit(c.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
