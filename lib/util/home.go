package util

import (
	"os"

	"github.com/go-spindle/spindle/lib/util/logger"
)

var log = logger.GetLogger()

// UserHome returns the current user's home directory, used to anchor the
// launcher's configuration directory. Falls back to $HOME (or USERPROFILE)
// when os.UserHomeDir fails, and to the working directory as a last resort
// so batch environments with a stripped environment can still start.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv("HOME"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
			return home
		}
		if home := os.Getenv("USERPROFILE"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
			return home
		}
		if wd, wdErr := os.Getwd(); wdErr == nil {
			log.WithError(err).Warn("os.UserHomeDir and $HOME unavailable; falling back to working directory")
			return wd
		}
		panic("spindle: unable to determine home directory; set $HOME environment variable")
	}

	return homeDir
}
