/*
 * Ofdecode - An OpenFlow Action Decoder
 *
 * Copyright (C) 2015 Samjung Data Service, Inc. All rights reserved.
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package log

import (
	"fmt"
	"io"
	slog "log/syslog"
	"runtime"
	"strings"

	"github.com/op/go-logging"
)

const format = `%{level}: %{shortpkg}.%{longfunc}: %{message}`

type syslog struct {
	writer *slog.Writer
}

// NewSyslog returns a go-logging backend that writes to the local syslog daemon.
func NewSyslog(prefix string) (logging.Backend, error) {
	w, err := slog.New(slog.LOG_INFO|slog.LOG_DAEMON, prefix)
	if err != nil {
		return nil, err
	}

	return &syslog{writer: w}, nil
}

func (r *syslog) Log(level logging.Level, calldepth int, record *logging.Record) error {
	line := fmt.Sprintf("%v (TID=%v)", record.Formatted(calldepth+1), getGoRoutineID())
	switch level {
	case logging.CRITICAL:
		return r.writer.Crit(line)
	case logging.ERROR:
		return r.writer.Err(line)
	case logging.WARNING:
		return r.writer.Warning(line)
	case logging.NOTICE:
		return r.writer.Notice(line)
	case logging.INFO:
		return r.writer.Info(line)
	case logging.DEBUG:
		return r.writer.Debug(line)
	default:
		panic("unexpected log level")
	}
}

func getGoRoutineID() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))[0]
}

// NewBackend returns a formatted backend for driver, which is either "stderr" or "syslog".
func NewBackend(driver, prefix string, stderr io.Writer) (logging.Backend, error) {
	switch strings.ToLower(driver) {
	case "", "stderr":
		backend := logging.NewLogBackend(stderr, "", 0)
		return logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{time} [%{pid}] `+format)), nil
	case "syslog":
		backend, err := NewSyslog(prefix)
		if err != nil {
			return nil, err
		}
		return logging.NewBackendFormatter(backend, logging.MustStringFormatter(format)), nil
	default:
		return nil, fmt.Errorf("unsupported log driver: %v", driver)
	}
}

// Init installs backend as the backend of all the loggers and sets their level.
func Init(backend logging.Backend, level logging.Level) logging.LeveledBackend {
	leveled := logging.AddModuleLevel(backend)
	// Set log level for all modules
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)

	return leveled
}

// ParseLevel converts a case-insensitive level name into a go-logging level.
func ParseLevel(level string) (logging.Level, error) {
	return logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
}
