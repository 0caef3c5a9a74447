package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

func parseCmd(c *cli.Context) error {
	custom := customConfig(c)
	mode, err := common.ParseRoundingMode(custom.Decimal.Rounding)
	if err != nil {
		return err
	}
	r, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "rational:\t%s\n", r)
	fmt.Fprintf(c.App.Writer, "decimal:\t%s\n", r.DecimalRound(custom.Decimal.Scale, mode))
	fmt.Fprintf(c.App.Writer, "continued:\t%s\n", formatTerms(r.ContinuedFraction()))
	return nil
}

func calcCmd(c *cli.Context) error {
	x, err := parseFlag(c, "x")
	if err != nil {
		return err
	}
	y, err := parseFlag(c, "y")
	if err != nil {
		return err
	}

	var op func() common.Rational
	switch c.String("op") {
	case "add":
		op = func() common.Rational { return x.Add(y) }
	case "sub":
		op = func() common.Rational { return x.Sub(y) }
	case "mul":
		op = func() common.Rational { return x.Mul(y) }
	case "div":
		op = func() common.Rational { return x.Div(y) }
	case "mod":
		op = func() common.Rational { return x.Mod(y) }
	case "gcd":
		op = func() common.Rational { return x.Gcd(y) }
	case "lcm":
		op = func() common.Rational { return x.Lcm(y) }
	case "min":
		op = func() common.Rational { return x.Min(y) }
	case "max":
		op = func() common.Rational { return x.Max(y) }
	case "quo":
		op = func() common.Rational { return common.NewIntegerFromBig(x.DivInteger(y)) }
	default:
		return fmt.Errorf("%w: unknown operation %q", common.ErrInvalidArgument, c.String("op"))
	}

	r, err := arithmetic(op)
	if err != nil {
		return err
	}
	logger.Verbosef("calc %s %s %s = %s", x, c.String("op"), y, r)
	fmt.Fprintln(c.App.Writer, r)
	return nil
}

func powCmd(c *cli.Context) error {
	x, err := parseFlag(c, "x")
	if err != nil {
		return err
	}
	n := c.Int("n")
	r, err := arithmetic(func() common.Rational { return x.Pow(n) })
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r)
	return nil
}

func roundCmd(c *cli.Context) error {
	x, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	var r common.Rational
	switch c.String("mode") {
	case "floor":
		r = x.Floor()
	case "ceil":
		r = x.Ceil()
	case "round":
		r = x.Round()
	case "truncate":
		r = x.Truncate()
	default:
		return fmt.Errorf("%w: unknown round mode %q", common.ErrInvalidArgument, c.String("mode"))
	}
	fmt.Fprintln(c.App.Writer, r)
	return nil
}

func decimalCmd(c *cli.Context) error {
	custom := customConfig(c)
	x, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	scale := custom.Decimal.Scale
	if c.IsSet("scale") {
		scale = int32(c.Int("scale"))
	}
	rounding := custom.Decimal.Rounding
	if c.IsSet("rounding") {
		rounding = c.String("rounding")
	}
	mode, err := common.ParseRoundingMode(rounding)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, x.DecimalRound(scale, mode))
	return nil
}

func continuedFractionCmd(c *cli.Context) error {
	x, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, formatTerms(x.ContinuedFraction()))
	return nil
}

func fromContinuedFractionCmd(c *cli.Context) error {
	var terms []*big.Int
	for _, s := range strings.Split(c.String("terms"), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		t, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return fmt.Errorf("%w: invalid term %q", common.ErrInvalidFormat, s)
		}
		terms = append(terms, t)
	}
	r, err := common.NewRationalFromContinuedFraction(terms...)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r)
	return nil
}

func randomCmd(c *cli.Context) error {
	bits := customConfig(c).Random.Bits
	if c.IsSet("bits") {
		bits = c.Int("bits")
	}
	r, err := common.Random(bits)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r)
	return nil
}

func sumCmd(c *cli.Context) error {
	custom := customConfig(c)
	f, err := os.Open(c.String("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	cache := newLiteralCache(custom.Cache.Size)
	sum, count := common.Zero, 0
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		literal := strings.TrimSpace(scanner.Text())
		if literal == "" || strings.HasPrefix(literal, "#") {
			continue
		}
		r, err := cache.parse(literal)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		sum = sum.Add(r)
		count++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	hits, misses, entries := cache.stats()
	logger.Verbosef("sum of %d literals, cache hits %d misses %d entries %d", count, hits, misses, entries)
	fmt.Fprintln(c.App.Writer, sum)
	return nil
}

func encodeCmd(c *cli.Context) error {
	var values []common.Rational
	for _, s := range strings.Split(c.String("values"), ",") {
		r, err := common.Parse(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		values = append(values, r)
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(common.CompressMsgpackMarshalPanic(values)))
	return nil
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var values []common.Rational
	err = common.DecompressMsgpackUnmarshal(raw, &values)
	if err != nil {
		return err
	}
	for _, r := range values {
		fmt.Fprintln(c.App.Writer, r)
	}
	return nil
}

func parseFlag(c *cli.Context, name string) (common.Rational, error) {
	s := c.String(name)
	r, err := common.Parse(s)
	if err != nil {
		return common.Zero, fmt.Errorf("--%s %q: %w", name, s, err)
	}
	logger.Debugf("parse %s => %s", s, r)
	return r, nil
}

// arithmetic turns the error panics of the Rational operations into errors.
func arithmetic(op func() common.Rational) (r common.Rational, err error) {
	defer func() {
		if v := recover(); v != nil {
			e, ok := v.(error)
			if !ok {
				panic(v)
			}
			err = e
		}
	}()
	return op(), nil
}

func formatTerms(terms []*big.Int) string {
	s := make([]string, len(terms))
	for i, t := range terms {
		s[i] = t.String()
	}
	if len(s) == 1 {
		return "[" + s[0] + "]"
	}
	return "[" + s[0] + "; " + strings.Join(s[1:], ", ") + "]"
}
