package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(config.LogLevel)
	err := newApp().Run(os.Args)
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact arithmetic on arbitrary precision rational numbers."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file, defaults are used without it",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   config.LogLevel,
			Usage:   "the log level, overrides the configuration file",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.BoolFlag{
			Name:  "time",
			Value: false,
			Usage: "print the runtime",
		},
	}
	app.Before = beforeCmd
	app.After = afterCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:    "parse",
			Aliases: []string{"p"},
			Usage:   "Parse a literal and print its canonical forms",
			Action:  parseCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "the literal like 41/152, -0.25 or 1._3",
				},
			},
		},
		{
			Name:   "calc",
			Usage:  "Apply a binary operation to two values",
			Action: calcCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "op",
					Value: "add",
					Usage: "one of add, sub, mul, div, mod, gcd, lcm, min, max or quo",
				},
				&cli.StringFlag{
					Name:  "x",
					Usage: "the left operand",
				},
				&cli.StringFlag{
					Name:  "y",
					Usage: "the right operand",
				},
			},
		},
		{
			Name:   "pow",
			Usage:  "Raise a value to an integer power",
			Action: powCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "x",
					Usage: "the base",
				},
				&cli.IntFlag{
					Name:  "n",
					Value: 1,
					Usage: "the exponent, may be negative",
				},
			},
		},
		{
			Name:   "round",
			Usage:  "Round a value to an integer",
			Action: roundCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "the value to round",
				},
				&cli.StringFlag{
					Name:  "mode",
					Value: "round",
					Usage: "one of floor, ceil, round or truncate",
				},
			},
		},
		{
			Name:   "decimal",
			Usage:  "Print a value as a decimal",
			Action: decimalCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "the value to print",
				},
				&cli.IntFlag{
					Name:  "scale",
					Usage: "the digits after the point, defaults to the configuration",
				},
				&cli.StringFlag{
					Name:  "rounding",
					Usage: "the rounding mode, defaults to the configuration",
				},
			},
		},
		{
			Name:   "cf",
			Usage:  "Print the continued fraction terms of a value",
			Action: continuedFractionCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "the value to expand",
				},
			},
		},
		{
			Name:   "fromcf",
			Usage:  "Evaluate continued fraction terms",
			Action: fromContinuedFractionCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "terms",
					Usage: "the comma separated terms a0,a1,...",
				},
			},
		},
		{
			Name:   "random",
			Usage:  "Draw a random value in [0, 1) with a power of two denominator",
			Action: randomCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "bits",
					Usage: "the random bits, defaults to the configuration",
				},
			},
		},
		{
			Name:   "sum",
			Usage:  "Sum the literals of a file, one per line",
			Action: sumCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "the file to read",
				},
			},
		},
		{
			Name:   "encode",
			Usage:  "Encode values as compressed msgpack",
			Action: encodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "values",
					Usage: "the comma separated values",
				},
			},
		},
		{
			Name:   "decode",
			Usage:  "Decode values from compressed msgpack",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "raw",
					Usage: "the encoded values `HEX`",
				},
			},
		},
	}
	return app
}

func beforeCmd(c *cli.Context) error {
	custom, err := config.Initialize(c.String("config"))
	if err != nil {
		return err
	}
	if _, err := common.ParseRoundingMode(custom.Decimal.Rounding); err != nil {
		return fmt.Errorf("config decimal rounding: %w", err)
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	err = logger.Configure(custom.Log.Level, custom.Log.Limiter, custom.Log.Filter)
	if err != nil {
		return err
	}
	logger.SetOutput(c.App.ErrWriter)
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata["config"] = custom
	c.App.Metadata["start"] = time.Now()
	return nil
}

func afterCmd(c *cli.Context) error {
	start, ok := c.App.Metadata["start"].(time.Time)
	if ok && c.Bool("time") {
		logger.Printf("runtime: %s", time.Since(start))
	}
	return nil
}

func customConfig(c *cli.Context) *config.Custom {
	custom, _ := c.App.Metadata["config"].(*config.Custom)
	if custom == nil {
		custom, _ = config.Initialize("")
	}
	return custom
}
