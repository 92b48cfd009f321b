package app

import "github.com/urfave/cli/v2"

var (
	focusFlag = &cli.IntFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus session duration in minutes for this run (default: 25)",
	}

	shortBreakFlag = &cli.IntFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes for this run (default: 5)",
	}

	longBreakFlag = &cli.IntFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes for this run (default: 15)",
	}

	cyclesFlag = &cli.IntFlag{
		Name:    "cycles",
		Aliases: []string{"c"},
		Usage:   "The number of focus sessions before a long break (default: 4, minimum: 2)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}

	ephemeralFlag = &cli.BoolFlag{
		Name:    "ephemeral",
		Aliases: []string{"e"},
		Usage:   "Keep settings and history in memory only for this run",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug output to the log file",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions that ended after this time (e.g. 'yesterday', '2 weeks ago')",
		Value: "7 days ago",
	}

	modeFlag = &cli.StringFlag{
		Name:  "mode",
		Usage: "Only show sessions of one kind: focus, short or long",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)
