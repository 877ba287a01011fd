package logging

import (
	"io"
	"log"
	"os"
)

// EnvVar turns on debug logging when set to any non-empty value
const EnvVar = "MOUNTINFO_DEBUG"

// LogFile receives debug output when it can be opened
const LogFile = "mountinfo-debug.log"

var (
	Debug   *log.Logger
	Enum    *log.Logger
	Enabled bool
)

func init() {
	Setup(os.Getenv(EnvVar) != "")
}

// Setup (re)initialises the loggers. When disabled they discard everything.
func Setup(enabled bool) {
	Enabled = enabled
	if !enabled {
		Debug = log.New(io.Discard, "", 0)
		Enum = log.New(io.Discard, "", 0)
		return
	}

	// Open the log file once for all loggers
	debugFile, err := os.OpenFile(LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// Fallback to stderr if we can't open the file
		SetOutput(os.Stderr, log.Ldate|log.Ltime)
		return
	}
	SetOutput(debugFile, log.Lmicroseconds)
}

// SetOutput points every logger at w
func SetOutput(w io.Writer, flags int) {
	Debug = log.New(w, "[DEBUG] ", flags)
	Enum = log.New(w, "[ENUM] ", flags)
}
