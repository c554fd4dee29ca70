package main

import (
	"fmt"
	"image/color"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/palette"
	"github.com/bodgit/palette/act"
	"github.com/bodgit/palette/gpl"
	"github.com/urfave/cli/v2"
)

const defaultDB = "palette.db"

// readPalette decodes a palette file, picking the codec by extension.
func readPalette(file string) (color.Palette, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(file), ".gpl") {
		return gpl.Decode(f)
	}
	return act.Decode(f)
}

// writePalette encodes a palette file, picking the codec by extension.
func writePalette(file, name string, p color.Palette) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(file), ".gpl") {
		return gpl.Encode(f, p, name, 0)
	}
	return act.Encode(f, p)
}

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

func main() {
	app := cli.NewApp()

	app.Name = "palette"
	app.Usage = "Adobe Color Table and GIMP palette conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PALETTE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to palette library",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "gpl2act",
			Usage:       "Convert a GIMP palette to an Adobe Color Table",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p := palette.New(newLogger(c))

				count, err := p.GPLToACT(c.Args().Get(0), c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("Successfully converted %d colors to %s\n", count, c.Args().Get(1))

				return nil
			},
		},
		{
			Name:        "act2gpl",
			Usage:       "Convert an Adobe Color Table to a GIMP palette",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "columns",
					Aliases: []string{"c"},
					Usage:   "grid width hint, 0 for unspecified",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p := palette.New(newLogger(c))

				if err := p.ACTToGPL(c.Args().Get(0), c.Args().Get(1), c.Int("columns")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every GIMP palette below a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p := palette.New(newLogger(c))

				if err := p.Batch(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Extract a GIMP palette from an image",
			Description: "",
			ArgsUsage:   "IMAGE OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "colors",
					Aliases: []string{"n"},
					Value:   256,
					Usage:   "maximum number of colors",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p := palette.New(newLogger(c))

				if err := p.Extract(c.Args().Get(0), c.Args().Get(1), c.Int("colors")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "store",
			Usage:       "Store a palette file in the library",
			Description: "",
			ArgsUsage:   "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := palette.NewDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				p, err := readPalette(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := db.Store(c.Args().Get(0), p); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "fetch",
			Usage:       "Write a stored palette out to a file",
			Description: "",
			ArgsUsage:   "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := palette.NewDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				p, err := db.Load(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if p == nil {
					return cli.NewExitError(fmt.Errorf("no palette named \"%s\"", c.Args().Get(0)), 1)
				}

				if err := writePalette(c.Args().Get(1), c.Args().Get(0), p); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List the stored palettes",
			Description: "",
			Action: func(c *cli.Context) error {
				db, err := palette.NewDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				names, err := db.Names()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, name := range names {
					fmt.Println(name)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
