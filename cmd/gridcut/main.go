package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/gridcut"
	"github.com/bodgit/gridcut/archive"
	"github.com/bodgit/gridcut/cell"
	"github.com/bodgit/gridcut/grid"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func slice(c *cli.Context) error {
	if c.NArg() > 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	config := gridcut.DefaultConfig()
	if c.NArg() == 1 {
		config.Input = c.Args().First()
	}
	config.OutputDir = c.String("output-dir")
	config.Archive = c.String("archive")
	config.Prefix = c.String("prefix")
	config.Grid = grid.Grid{Rows: c.Int("rows"), Cols: c.Int("cols")}
	config.Colors = c.Int("colors")
	config.ArchiveCompression = c.Int("level")

	level, err := cell.ParseCompressionLevel(c.String("png-level"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	config.PNGCompression = level
	config.Verify = c.Bool("verify")

	result, err := gridcut.New(newLogger(c)).Run(config)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintln(c.App.Writer, result.Archive)

	return nil
}

func verify(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	args := c.Args().Slice()
	if err := archive.Verify(args[0], args[1:]); err != nil {
		return cli.NewExitError(err, 1)
	}

	newLogger(c).Printf("\"%s\" matches %d file(s)\n", args[0], len(args)-1)

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "gridcut"
	app.Usage = "Slice a grid of pictures into separate PNG files and zip them"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "slice",
			Usage:       "Slice an image into grid cells and archive them",
			Description: "Writes one PNG per grid cell, numbered in row-major order, then bundles them into a ZIP archive and prints its path",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output-dir",
					Aliases: []string{"o"},
					Value:   gridcut.DefaultOutputDir,
					Usage:   "directory for the cell images",
				},
				&cli.StringFlag{
					Name:    "archive",
					Aliases: []string{"a"},
					Value:   gridcut.DefaultArchive,
					Usage:   "path of the ZIP archive",
				},
				&cli.StringFlag{
					Name:    "prefix",
					Aliases: []string{"p"},
					Value:   gridcut.DefaultPrefix,
					Usage:   "filename prefix for the cell images",
				},
				&cli.IntFlag{
					Name:  "rows",
					Value: gridcut.DefaultRows,
					Usage: "number of rows in the grid",
				},
				&cli.IntFlag{
					Name:  "cols",
					Value: gridcut.DefaultCols,
					Usage: "number of columns in the grid",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: 0,
					Usage: "reduce each cell to at most this many colors, 0 to disable",
				},
				&cli.IntFlag{
					Name:  "level",
					Value: archive.DefaultCompression,
					Usage: "archive compression level, -2 to 9",
				},
				&cli.StringFlag{
					Name:  "png-level",
					Value: "default",
					Usage: "PNG compression level, one of default, none, speed or best",
				},
				&cli.BoolFlag{
					Name:  "verify",
					Usage: "verify the archive after writing it",
				},
			},
			Action: slice,
		},
		{
			Name:        "verify",
			Usage:       "Check an archive holds exactly the given files",
			Description: "",
			ArgsUsage:   "ARCHIVE FILE...",
			Action:      verify,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
