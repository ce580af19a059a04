// Package log provides the categorized loggers shared by the yew command,
// the code generator and the language server.
package log

import (
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
)

var (
	generateLog = commonlog.GetLogger("yew.generate")
	serverLog   = commonlog.GetLogger("yew.server")
	debugLog    = commonlog.GetLogger("yew.debug")
)

// The command exits without running exit hooks, so a buffered writer
// would lose its last lines.
func init() {
	backend := simple.NewBackend()
	backend.Buffered = false
	commonlog.SetBackend(backend)
	Configure(0, "")
}

// DebugEnv names the environment variable holding a debug log path. When
// set and no explicit path is given, every logger writes debug output there.
const DebugEnv = "YEW_DEBUG"

// Configure sets the verbosity and destination of every logger. Verbosity 0
// logs notices and above, 1 adds info and 2 adds debug output. An empty path
// logs to stderr, or to $YEW_DEBUG when it is set.
func Configure(verbosity int, path string) {
	if path == "" {
		if env := os.Getenv(DebugEnv); env != "" {
			path = env
			verbosity = max(verbosity, 2)
		}
	}
	if path == "" {
		commonlog.Configure(verbosity, nil)
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			commonlog.Configure(verbosity, nil)
			generateLog.Warningf("log directory: %v; logging to stderr", err)
			return
		}
	}
	commonlog.Configure(verbosity, &path)
}

// Enabled reports whether debug output is being written.
func Enabled() bool {
	return debugLog.AllowLevel(commonlog.Debug)
}

// Debug writes a debug log message.
func Debug(format string, args ...any) {
	debugLog.Debugf(format, args...)
}

// Server writes a language server message.
func Server(format string, args ...any) {
	serverLog.Infof(format, args...)
}

// Generate writes a code generation message.
func Generate(format string, args ...any) {
	generateLog.Infof(format, args...)
}

// Warning writes a warning under the generate category.
func Warning(format string, args ...any) {
	generateLog.Warningf(format, args...)
}

// Error writes an error under the generate category.
func Error(format string, args ...any) {
	generateLog.Errorf(format, args...)
}
