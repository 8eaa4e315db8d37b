package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/zebitex/config"
	"github.com/lukehollenback/zebitex/constants"
	"github.com/lukehollenback/zebitex/exchange"
	"github.com/lukehollenback/zebitex/exchange/zebitex"
	"github.com/lukehollenback/zebitex/logger"
	"github.com/pkg/errors"
)

const (
	Name = "cli"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	cfgPath     *string
	cfgEnvFile  *string
	cfgDev      *bool
	cfgLogLevel *string
)

func init() {
	//
	// Register configuration flags. Anything set here wins over the config file and the environment.
	//
	cfgPath = flag.String("config", "", "Path to a YAML configuration file.")
	cfgEnvFile = flag.String("env", constants.DefaultEnvFile, "Path to a dotenv file holding the API credentials.")
	cfgDev = flag.Bool("dev", false, "Talk to the staging environment instead of production.")
	cfgLogLevel = flag.String("log-level", "", "Log level (debug, info, warn, error).")

	flag.Usage = usage
}

func main() {
	flag.Parse()

	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()

		return exitUsage
	}

	//
	// Load the configuration and apply whatever flags were explicitly provided on top of it.
	//
	cfg, err := config.Load(*cfgPath, *cfgEnvFile)
	if err != nil {
		fail(err)

		return exitError
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dev":
			cfg.Zebitex.Dev = *cfgDev
		case "log-level":
			cfg.Log.Level = *cfgLogLevel
		}
	})

	log := logger.Named(logger.New(cfg.Log), Name)

	//
	// Refuse to sign anything without credentials; the exchange would only reject it anyway.
	//
	cmd, ok := findCommand(args[0])
	if !ok {
		fail(usagef("unknown command %q", args[0]))
		usage()

		return exitUsage
	}

	if cmd.private && !cfg.Zebitex.HasCredentials() {
		fail(usagef(
			"%s needs API credentials (set %s and %s, or use -config)",
			cmd.name, constants.EnvAccessKey, constants.EnvSecret,
		))

		return exitUsage
	}

	//
	// Build the client.
	//
	opts := []zebitex.Option{
		zebitex.WithHTTPClient(&http.Client{Timeout: cfg.Zebitex.Timeout}),
		zebitex.WithLogger(log),
	}

	if cfg.Zebitex.URL != "" {
		opts = append(opts, zebitex.WithBaseURL(cfg.Zebitex.URL))
	}

	client := zebitex.NewClient(cfg.Zebitex.Key, cfg.Zebitex.Secret, cfg.Zebitex.Dev, opts...)

	log.WithField("url", client.URL()).WithField("command", cmd.name).Debug("Running command.")

	//
	// Let an operating system interrupt abort the in-flight request.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = execute(ctx, client, cmd.name, args[1:], os.Stdout)

	return exitCode(err)
}

//
// exitCode reports failures on stderr and picks the matching process exit code.
//
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	fail(err)

	var cliErr *usageError
	var apiUsageErr *exchange.UsageError

	if errors.As(err, &cliErr) || errors.As(err, &apiUsageErr) {
		return exitUsage
	}

	return exitError
}

func fail(err error) {
	var httpErr *exchange.HTTPError

	if errors.As(err, &httpErr) {
		fmt.Fprintf(
			os.Stderr,
			"%s %s\n",
			aurora.Bold(aurora.Red(fmt.Sprintf("HTTP %d", httpErr.StatusCode()))),
			httpErr.Body(),
		)

		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Bold(aurora.Red("Error:")), err)
}

func usage() {
	out := flag.CommandLine.Output()

	fmt.Fprintf(out, "Usage: %s [flags] <command> [args]\n\nCommands:\n", constants.AppName)

	for _, c := range commands {
		scope := aurora.Green("public")
		if c.private {
			scope = aurora.Yellow("private")
		}

		fmt.Fprintf(out, "  %-16s %-52s %s\n", c.name, c.args, scope)
	}

	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}
