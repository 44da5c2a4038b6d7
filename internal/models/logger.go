package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger bridges gorm's logging interface to zerolog.
type logger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, the level is controlled by the zerolog logger.
func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, format string, args ...any) {
	l.Logger.Info().Msgf(format, args...)
}

func (l *logger) Warn(_ context.Context, format string, args ...any) {
	l.Logger.Warn().Msgf(format, args...)
}

func (l *logger) Error(_ context.Context, format string, args ...any) {
	l.Logger.Error().Msgf(format, args...)
}

// Trace logs queries at debug level. Failed queries are logged as
// errors unless the record simply does not exist.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		l.Logger.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", time.Since(begin)).Msg("database query failed")
		return
	}

	l.Logger.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", time.Since(begin)).Msg("database query")
}
