// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

const envName = "POMO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	dataDir        string
	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		p := newPaths()

		p.applyEnvironmentOverrides(os.Getenv(envName))

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func newPaths() *Paths {
	return &Paths{
		appDir:         "pomo",
		configFileName: "config.yml",
		dbFileName:     "pomo.db",
		statusFileName: "status.json",
		logFileName:    "pomo.log",
	}
}

func (p *Paths) Dir() string {
	return p.appDir
}

// DataDir is the directory holding the database, status file and logs.
func (p *Paths) DataDir() string {
	return p.dataDir
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DBFilePath() string {
	return p.dbFilePath
}

func (p *Paths) StatusFilePath() string {
	return p.statusFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

// applyEnvironmentOverrides keeps the files of separate environments (such
// as "dev") apart from the user's real data.
func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("pomo_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("pomo_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataDir, osutil.DirPermission); err != nil {
		return err
	}

	p.dataDir = dataDir
	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
