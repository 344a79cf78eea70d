package main

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"ida2vtable/utils"
	"ida2vtable/vtable"
)

func main() {
	log.SetHandler(clihandler.Default)

	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err.Error())
	}
}

func newApp() *cli.App {
	convertFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "yaml file with default flag values",
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "IDA vtable dump",
			EnvVars: []string{"IDA2VTABLE_INPUT"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output prefix, writes <output>_vtables.txt and <output>_indexes.txt",
			EnvVars: []string{"IDA2VTABLE_OUTPUT"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "merge",
			Aliases: []string{"m"},
			Usage:   "previously generated vtable to merge with",
			EnvVars: []string{"IDA2VTABLE_MERGE"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:        "return-type",
			Aliases:     []string{"r"},
			Usage:       "return type used when the name gives no hint",
			Value:       vtable.DefaultReturnType,
			DefaultText: vtable.DefaultReturnType,
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:        "index-type",
			Usage:       "type of the generated index constants",
			Value:       vtable.DefaultIndexType,
			DefaultText: vtable.DefaultIndexType,
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "offsets",
			Usage: "append slot index and byte offset comments",
			Value: true,
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "x86",
			Usage: "32-bit pointers (4 byte slots)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "diff",
			Usage: "show declarations changed by --merge",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "print",
			Aliases: []string{"p"},
			Usage:   "print the declarations to stdout",
		}),
	}

	return &cli.App{
		Name:  "ida2vtable",
		Usage: "IDA vtable dump to C++ virtual declarations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "verbose output",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "force colorized output",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colorized output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			switch {
			case c.Bool("no-color"):
				force := false
				utils.InitColor(&force)
			case c.Bool("color"):
				force := true
				utils.InitColor(&force)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "convert",
				Aliases: []string{"c"},
				Usage:   "convert an IDA vtable dump",
				Description: heredoc.Doc(`
					Reads the vtable as shown by IDA (Ctrl+C on the .rodata view) and writes
					one virtual declaration per slot plus an index constant per method.

					With --merge the argument names and return types of a previously
					generated and hand-edited <output>_vtables.txt are kept.`),
				Flags:  convertFlags,
				Before: altsrc.InitInputSourceWithContext(convertFlags, altsrc.NewYamlSourceFromFlagFunc("config")),
				Action: func(c *cli.Context) error {
					opts := &Options{
						Input:      c.String("input"),
						Output:     c.String("output"),
						Merge:      c.String("merge"),
						ReturnType: c.String("return-type"),
						IndexType:  c.String("index-type"),
						Offsets:    c.Bool("offsets"),
						X86:        c.Bool("x86"),
						Diff:       c.Bool("diff"),
						Print:      c.Bool("print"),
					}
					if opts.Input == "" || opts.Output == "" {
						if err := cli.ShowSubcommandHelp(c); err != nil {
							return err
						}
						return cli.Exit("--input and --output are required", 1)
					}
					return VtableHelper(opts, c.App.Writer)
				},
			},
			{
				Name:    "inspect",
				Aliases: []string{"i"},
				Usage:   "show how every line of a dump is classified",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "IDA vtable dump",
						EnvVars: []string{"IDA2VTABLE_INPUT"},
					},
					&cli.StringFlag{
						Name:  "return-type",
						Usage: "return type used when the name gives no hint",
						Value: vtable.DefaultReturnType,
					},
				},
				Action: func(c *cli.Context) error {
					ipath := c.String("input")
					if ipath == "" {
						if err := cli.ShowSubcommandHelp(c); err != nil {
							return err
						}
						return cli.Exit("--input is required", 1)
					}
					return InspectHelper(ipath, c.String("return-type"), c.App.Writer)
				},
			},
		},
	}
}
