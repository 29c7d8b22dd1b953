package logger

import "log"

// StderrLogger writes through the standard logger. Debug lines are dropped
// unless verbose is set.
type StderrLogger struct {
	verbose bool
}

func NewStderrLogger(verbose bool) *StderrLogger {
	return &StderrLogger{verbose: verbose}
}

func (l *StderrLogger) Debug(message string) {
	if l.verbose {
		log.Printf("DEBUG %s", message)
	}
}

func (l *StderrLogger) Error(message string) {
	log.Printf("ERROR %s", message)
}
