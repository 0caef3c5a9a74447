package logger

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
)

func init() {
	counter = &hashmap.HashMap{}
}

// Configure applies the level, limiter and filter from one configuration section.
func Configure(l, limit int, pattern string) error {
	SetLevel(l)
	SetLimiter(limit)
	return SetFilter(pattern)
}

func SetLevel(l int) {
	level = l
}

func SetLimiter(l int) {
	limiter = l
}

// SetOutput writes the lines to w without the date and time prefix, the
// command output is not a long running log.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(0)
}

// SetFilter keeps only the lines matching the RE2 pattern, an empty pattern
// removes the filter.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func Printf(format string, v ...interface{}) {
	if level >= INFO {
		log.Printf(format, v...)
	}
}

// Errorf ignores the filter and the limiter, an error is printed whenever
// the level allows it.
func Errorf(format string, v ...interface{}) {
	if level >= ERROR {
		log.Printf(format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	log.Print(out)
}

func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	return atomic.AddInt64(actual, 1) <= int64(limiter)
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
