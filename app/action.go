package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/controller"
	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/logger"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/static"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/notify"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
	"github.com/ayoisaiah/pomo/tui"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

var errUnknownMode = &apperr.Error{
	Message: "unknown session mode %q: expected focus, short or long",
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves the configuration from the config file and the
// command-line flags, in that order.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	return config.New(
		config.WithPaths(),
		config.WithViperConfig(pathutil.Must().ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

func openDB(cfg *config.Config) (store.DB, error) {
	if cfg.System.Ephemeral {
		return store.NewMemory(), nil
	}

	return store.NewClient(cfg.System.DBPath)
}

// defaultAction opens the timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logCloser := logger.Init(cfg.System.LogPath, cfg.System.Debug)
	defer logCloser.Close()

	// Catch invalid overrides before the screen is taken over. Saved
	// settings are always valid, so checking against the defaults is
	// enough.
	if err = cfg.Overrides.Apply(config.DefaultDurations()); err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	defer db.Close()

	ui.DarkTheme = cfg.Display.DarkTheme

	var program *tea.Program

	ticker := timer.NewTicker(
		clockwork.NewRealClock(),
		time.Second,
		func(t timer.Tick) {
			program.Send(tui.TickMsg(t))
		},
	)

	iconPath, err := static.Icon(pathutil.Must().DataDir())
	if err != nil {
		slog.Warn("notification icon unavailable", "error", err)
	}

	var chime *notify.Chime
	if cfg.Notifications.Sound {
		chime = &notify.Chime{}
	}

	ctrl := controller.New(controller.Options{
		Durations:  config.DefaultDurations(),
		Scheduler:  ticker,
		DB:         db,
		Notifier:   notify.NewDesktop(cfg.Notifications.Enabled, iconPath, chime),
		Overrides:  cfg.Overrides,
		SessionCmd: cfg.Settings.Cmd,
	})

	statusPath := cfg.System.StatusPath
	if cfg.System.Ephemeral {
		statusPath = ""
	}

	m := tui.New(ctrl, ticker, tui.Options{
		Status:         ctrl.Init(),
		StatusPath:     statusPath,
		DarkTheme:      cfg.Display.DarkTheme,
		TwentyFourHour: cfg.Display.TwentyFourHour,
	})

	slog.Info("starting pomo", "ephemeral", cfg.System.Ephemeral)

	program = tea.NewProgram(m)

	_, err = program.Run()

	ticker.Stop()

	return err
}

// statusAction prints the status of the timer if one is open.
func statusAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	p := pathutil.Must()

	return printStatus(config.Stdout, p.DBFilePath(), p.StatusFilePath(), time.Now())
}

func printStatus(w io.Writer, dbPath, statusPath string, now time.Time) error {
	inUse, err := store.InUse(dbPath)
	if err != nil {
		return err
	}

	// pomo is not running, so there is no status to report
	if !inUse {
		return nil
	}

	s, err := status.Read(statusPath)
	if err != nil || s == nil {
		return err
	}

	_, err = fmt.Fprintln(w, s.Line(now))

	return err
}

// historyAction lists the sessions that ended since the --since time.
func historyAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var mode session.Mode

	if s := ctx.String("mode"); s != "" {
		var ok bool

		mode, ok = session.Parse(s)
		if !ok {
			return errUnknownMode.Fmt(s)
		}
	}

	now := time.Now()

	since, err := timeutil.FromStr(ctx.String("since"), now)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	records, err := db.Records(since, now)
	if err != nil {
		return err
	}

	records = filterRecords(records, mode)

	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listRecords(config.Stdout, records, cfg.Display.TwentyFourHour)
}

// editConfigAction handles the edit-config command which opens the pomo config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	cmd := exec.Command(editor, pathutil.Must().ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
