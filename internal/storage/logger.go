package storage

import "log"

// badgerLogger forwards badger's log calls to a standard logger.
type badgerLogger struct {
	l     *log.Logger
	debug bool
}

func newLogger(l *log.Logger, debug bool) *badgerLogger {
	return &badgerLogger{l: l, debug: debug}
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Printf("badger: ERROR: "+format, args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Printf("badger: WARNING: "+format, args...)
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Printf("badger: "+format, args...)
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	if b.debug {
		b.l.Printf("badger: DEBUG: "+format, args...)
	}
}
