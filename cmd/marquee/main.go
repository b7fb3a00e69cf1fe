package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts app.Options

	flagSet := pflag.NewFlagSet("marquee", pflag.ContinueOnError)
	flagSet.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/marquee/config.toml)")
	flagSet.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/marquee/prefs.toml)")
	flagSet.StringVar(&opts.Source, "source", "", "catalog URL or file path (overrides config)")
	flagSet.StringVar(&opts.LogFile, "log-file", "", "log file (overrides config)")
	flagSet.BoolVar(&opts.Debug, "debug", false, "log at debug level")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 2
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		fmt.Fprintf(os.Stderr, "marquee: unexpected argument %q\n", extra[0])
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
