package gxudp

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the importance of a log message.
//
// A message is written to a sink if the message level is equal or
// higher than the level the sink was added with.
type Level int

const (
	// LevelLowest is used for messages that are not important.
	LevelLowest Level = 100
	// LevelLow is used for less important messages.
	LevelLow Level = 200
	// LevelMiddle is the base line.
	LevelMiddle Level = 300
	// LevelHigh is used for more important messages.
	LevelHigh Level = 400
	// LevelHighest is used for the most important messages.
	LevelHighest Level = 500
)

// LevelParse converts the given string into a Level value.
// Level names and numeric values are accepted.
func LevelParse(value string) (Level, error) {
	var ret Level
	var err error
	switch strings.ToUpper(value) {
	case "LOWEST":
		ret = LevelLowest
	case "LOW":
		ret = LevelLow
	case "MIDDLE":
		ret = LevelMiddle
	case "HIGH":
		ret = LevelHigh
	case "HIGHEST":
		ret = LevelHighest
	default:
		n, perr := strconv.Atoi(value)
		if perr != nil {
			err = fmt.Errorf("%w: %q", gxcommon.ErrUnknownEnum, value)
		} else {
			ret = Level(n)
		}
	}
	return ret, err
}

// String returns the canonical name of the level or its numeric value.
// It satisfies fmt.Stringer.
func (g Level) String() string {
	switch g {
	case LevelLowest:
		return "Lowest"
	case LevelLow:
		return "Low"
	case LevelMiddle:
		return "Middle"
	case LevelHigh:
		return "High"
	case LevelHighest:
		return "Highest"
	}
	return strconv.Itoa(int(g))
}

// Sink writes log messages to some output.
type Sink interface {
	Write(level Level, message string) error
}

// Terminator is implemented by sinks that must be released when the logger terminates.
type Terminator interface {
	Terminate() error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(level Level, message string) error

// Write calls f.
func (f SinkFunc) Write(level Level, message string) error {
	return f(level, message)
}

type logItem struct {
	level   Level
	message string
}

type sinkEntry struct {
	level Level
	sink  Sink
}

// Logger collects messages and writes them to the added sinks on Flush.
// Flush is called periodically after Start.
type Logger struct {
	mu         sync.Mutex
	pending    []logItem
	terminated bool
	stop       chan struct{}
	wg         sync.WaitGroup

	// Serializes writes to sinks.
	sinkMu sync.Mutex
	sinks  []sinkEntry
}

// NewLogger returns a logger without sinks.
func NewLogger() *Logger {
	return &Logger{}
}

// AddSink adds sink that receives messages of the given level and above.
func (l *Logger) AddSink(level Level, sink Sink) {
	l.sinkMu.Lock()
	l.sinks = append(l.sinks, sinkEntry{level: level, sink: sink})
	l.sinkMu.Unlock()
}

// Log queues the message. Messages are dropped after Terminate.
func (l *Logger) Log(level Level, message string) {
	l.mu.Lock()
	if !l.terminated {
		l.pending = append(l.pending, logItem{level: level, message: message})
	}
	l.mu.Unlock()
}

// Logf formats and queues the message.
func (l *Logger) Logf(level Level, format string, a ...any) {
	l.Log(level, fmt.Sprintf(format, a...))
}

// Pending returns the number of queued messages.
func (l *Logger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Flush writes queued messages to the sinks.
// All sinks are written even if some fail. Failures are joined to the returned error.
func (l *Logger) Flush() error {
	l.mu.Lock()
	items := l.pending
	l.pending = nil
	l.mu.Unlock()

	l.sinkMu.Lock()
	defer l.sinkMu.Unlock()
	var errs []error
	for _, it := range items {
		for _, s := range l.sinks {
			if it.level < s.level {
				continue
			}
			if err := s.sink.Write(it.level, it.message); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Start flushes the queue every interval until Terminate is called.
// If interval is not positive, Flush must be called by the user.
func (l *Logger) Start(interval time.Duration) {
	if interval <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil || l.terminated {
		return
	}
	l.stop = make(chan struct{})
	l.wg.Add(1)
	go l.run(interval, l.stop)
}

func (l *Logger) run(interval time.Duration, stop chan struct{}) {
	defer l.wg.Done()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			_ = l.Flush()
		}
	}
}

// Terminate stops the periodic flush, writes the queued messages and
// terminates the sinks that implement Terminator.
// Calling Terminate again has no effect.
func (l *Logger) Terminate() error {
	l.mu.Lock()
	if l.terminated {
		l.mu.Unlock()
		return nil
	}
	l.terminated = true
	stop := l.stop
	l.stop = nil
	l.mu.Unlock()
	if stop != nil {
		close(stop)
		l.wg.Wait()
	}
	err := l.Flush()

	l.sinkMu.Lock()
	defer l.sinkMu.Unlock()
	errs := []error{err}
	for _, s := range l.sinks {
		if t, ok := s.sink.(Terminator); ok {
			errs = append(errs, t.Terminate())
		}
	}
	return errors.Join(errs...)
}

// TraceHandler returns a socket trace handler that logs the traces with the given level.
func (l *Logger) TraceHandler(level Level) TraceHandler {
	return func(s *Socket, e gxcommon.TraceEventArgs) {
		l.Logf(level, "%s %s", s.String(), e.String())
	}
}

// WriterSink writes messages as "Level:message" lines.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write implements Sink.
func (s *WriterSink) Write(level Level, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "%s:%s\n", level, message)
	return err
}

// ZapSink writes messages to a zap logger.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink returns sink that writes to logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func zapLevel(level Level) zapcore.Level {
	switch {
	case level < LevelMiddle:
		return zapcore.DebugLevel
	case level < LevelHigh:
		return zapcore.InfoLevel
	case level < LevelHighest:
		return zapcore.WarnLevel
	}
	return zapcore.ErrorLevel
}

// Write implements Sink.
func (s *ZapSink) Write(level Level, message string) error {
	if ce := s.logger.Check(zapLevel(level), message); ce != nil {
		ce.Write(zap.Stringer("log_level", level))
	}
	return nil
}

// Terminate implements Terminator. It syncs the zap logger.
func (s *ZapSink) Terminate() error {
	return s.logger.Sync()
}
