// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an isolated set of files, e.g. FOCUSFLOW_ENV=dev.
const EnvVar = "FOCUSFLOW_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir       string
	configFileName  string
	dbFileName      string
	sqliteFileName  string
	offlineFileName string
	statusFileName  string
	logFileName     string

	// Computed absolute paths
	configFilePath  string
	dbFilePath      string
	sqliteFilePath  string
	offlineFilePath string
	statusFilePath  string
	logFilePath     string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:       "focusflow",
			configFileName:  "config.yml",
			dbFileName:      "focusflow.db",
			sqliteFileName:  "focusflow.sqlite",
			offlineFileName: "offline.db",
			statusFileName:  "status.json",
			logFileName:     "focusflow.log",
		}

		paths.applyEnvironmentOverrides(os.Getenv(EnvVar))
		initErr = paths.computePaths()
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

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func SQLiteFilePath() string {
	return Must().sqliteFilePath
}

func OfflineFilePath() string {
	return Must().offlineFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("focusflow_%s.db", env)
	p.sqliteFileName = fmt.Sprintf("focusflow_%s.sqlite", env)
	p.offlineFileName = fmt.Sprintf("offline_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("focusflow_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.configDir, p.configFileName))
	if err != nil {
		return err
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return err
	}

	dataDir := filepath.Dir(p.dbFilePath)

	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)
	p.offlineFilePath = filepath.Join(dataDir, p.offlineFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
