package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
)

type cli struct {
	LogLevel  string `help:"Logging level." default:"info" enum:"trace,debug,info,warn,error,fatal" env:"VALUEDUMP_LOG_LEVEL"`
	LogFormat string `help:"Log format (text or json)." default:"text" enum:"text,json" env:"VALUEDUMP_LOG_FORMAT"`

	JSON   jsonCmd   `cmd:"" name:"json" help:"Parse a JSON document and print its value tree."`
	Scalar scalarCmd `cmd:"" help:"Build a scalar value from a literal and print it."`
	Verify verifyCmd `cmd:"" help:"Check file digests and print the mismatching verification records."`
}

// app carries what every command needs.
type app struct {
	log log.Logger
	out io.Writer
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("valuedump"),
		kong.Description("Build tagged values from JSON, literals and file digests and print them."),
		kong.UsageOnError(),
	)

	a := &app{
		log: newLogger(args.LogLevel, args.LogFormat, os.Stderr),
		out: os.Stdout,
	}
	if err := ctx.Run(a); err != nil {
		a.log.WithError(err).Fatal("valuedump failed")
	}
}

func newLogger(level, format string, w io.Writer) log.Logger {
	var f logrus.Formatter = new(logrus.TextFormatter)
	if format == "json" {
		f = &logrus.JSONFormatter{}
	}
	return log.New(
		log.WithLevel(parseLevel(level)),
		log.WithFormatter(f),
		log.WithWriter(w))
}

func parseLevel(s string) log.Level {
	switch s {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
