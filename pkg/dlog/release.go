//go:build !debug

package dlog

func (l *Logger) Debugf(format string, v ...interface{}) {}

func (l *Logger) Debug(v ...interface{}) {}

func (l *Logger) Debugln(v ...interface{}) {}
