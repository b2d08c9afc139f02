package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/zemenlab/go-ethiopic/ethiopic"
	"github.com/zemenlab/go-ethiopic/internal/config"
	"github.com/zemenlab/go-ethiopic/internal/server"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// are executed before the process terminates. os.Exit() does not run defers,
// so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	serveMode := flag.Bool(config.FlagServe, false, config.FlagDescServe)
	port := flag.String(config.FlagPort, config.DefaultPort, config.FlagDescPort)
	gregDate := flag.String(config.FlagDate, "", config.FlagDescDate)
	ethDate := flag.String(config.FlagEthiopic, "", config.FlagDescEthiopic)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// Structured logging (slog) goes to stderr so conversion output on
	// stdout stays clean for shell pipelines.
	setupLogging(*debugMode)

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, *serveMode, *port, *gregDate, *ethDate); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	if *serveMode {
		slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	}
	return config.ExitCodeSuccess
}

// run dispatches between server mode and one-shot conversion.
func run(ctx context.Context, serveMode bool, port, gregDate, ethDate string) error {
	if serveMode {
		srv := server.NewConversionServer(port)
		return srv.Start(ctx)
	}

	if ethDate != "" {
		year, month, day, err := parseDateArg(ethDate)
		if err != nil {
			return err
		}
		return convertEthiopic(year, month, day)
	}

	year, month, day := todayGregorian()
	if gregDate != "" {
		var err error
		if year, month, day, err = parseDateArg(gregDate); err != nil {
			return err
		}
	}
	return convertGregorian(year, month, day)
}

// convertGregorian converts a Gregorian date and prints both calendars.
func convertGregorian(year, month, day int) error {
	eth, err := ethiopic.GregorianToEthiopic(year, month, day)
	if err != nil {
		return err
	}
	jdn := ethiopic.GregorianToJDN(year, month, day)
	printConversion(eth, ethiopic.Date{Year: year, Month: month, Day: day}, ethiopic.GuessEra(jdn), jdn)
	return nil
}

// convertEthiopic converts an Ethiopian date (era auto-detected) and prints
// both calendars.
func convertEthiopic(year, month, day int) error {
	greg, err := ethiopic.EthiopicToGregorian(year, month, day)
	if err != nil {
		return err
	}
	era := ethiopic.GuessEra(ethiopic.EthiopicToJDN(year, month, day, ethiopic.JDEpochOffsetAmeteMihret))
	jdn := ethiopic.EthiopicToJDN(year, month, day, era)
	printConversion(ethiopic.Date{Year: year, Month: month, Day: day}, greg, era, jdn)
	return nil
}

func printConversion(eth, greg ethiopic.Date, era ethiopic.Era, jdn int64) {
	eraLabel := config.EraParamAmeteMihret
	if era == ethiopic.JDEpochOffsetAmeteAlem {
		eraLabel = config.EraParamAmeteAlem
	}
	fmt.Printf("Gregorian: %s\n", greg)
	fmt.Printf("Ethiopian: %s (%s)\n", eth, eraLabel)
	fmt.Printf("Weekday:   %s\n", config.WeekdayNames[ethiopic.DayOfWeek(jdn)])
	fmt.Printf("JDN:       %d\n", jdn)
}

// parseDateArg parses a YYYY-MM-DD argument. time.Parse is unsuitable here:
// Ethiopian dates have a 13th month it would reject.
func parseDateArg(value string) (year, month, day int, err error) {
	n, err := fmt.Sscanf(value, "%d-%d-%d", &year, &month, &day)
	if err != nil || n != config.DateFieldCount {
		return 0, 0, 0, fmt.Errorf("%s: %q", config.ErrDateFormat, value)
	}
	return year, month, day, nil
}

func todayGregorian() (year, month, day int) {
	now := server.RealClock{}.Now()
	return now.Year(), int(now.Month()), now.Day()
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}
