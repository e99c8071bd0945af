package system

import (
    "os"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger for the CLI. Product output goes
// through internal/console; this one reports failures on stderr.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    ReportTimestamp: true,
    Prefix:          "venus",
})

// SetVerbose toggles debug-level diagnostics.
func SetVerbose(v bool) {
    if v {
        Logger.SetLevel(clog.DebugLevel)
        return
    }
    Logger.SetLevel(clog.InfoLevel)
}
