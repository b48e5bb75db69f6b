package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// loggerAdapter routes watermill's internal logging through zerolog.
type loggerAdapter struct {
	fields watermill.LogFields
}

func NewLoggerAdapter() watermill.LoggerAdapter {
	return &loggerAdapter{}
}

func (l *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.event(log.Error().Err(err), fields).Msg(msg)
}

func (l *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.event(log.Info(), fields).Msg(msg)
}

func (l *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.event(log.Debug(), fields).Msg(msg)
}

func (l *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.event(log.Trace(), fields).Msg(msg)
}

func (l *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{fields: l.fields.Add(fields)}
}

func (l *loggerAdapter) event(e *zerolog.Event, fields watermill.LogFields) *zerolog.Event {
	return e.Str("component", "watermill").Fields(map[string]any(l.fields.Add(fields)))
}
