package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/treelabs/toolbelt/core"
)

// ZapHandler is an adapter that forwards records to a zap.Logger. This
// lets the facility feed an existing zap-based pipeline (sampling,
// encoders, sinks) without the application changing its emission sites.
type ZapHandler struct {
	zl       *zap.Logger
	minLevel core.Level
}

// NewZapHandler creates a handler backed by the given zap logger
func NewZapHandler(zl *zap.Logger, minLevel core.Level) *ZapHandler {
	return &ZapHandler{
		zl:       zl,
		minLevel: minLevel,
	}
}

// MinLevel returns the handler's effective minimum level
func (h *ZapHandler) MinLevel() core.Level {
	return effectiveMin(h.minLevel)
}

// Handle converts the record to a zap emission. The originating logger
// name and record id travel as fields; a captured exception becomes a
// zap error field.
func (h *ZapHandler) Handle(rec *core.Record) error {
	if rec.Level < h.MinLevel() {
		return nil
	}

	name := rec.Logger
	if name == "" {
		name = "root"
	}
	fields := []zap.Field{
		zap.String("logger", name),
		zap.String("record_id", rec.ID),
	}
	if rec.Exc != nil {
		fields = append(fields, zap.Error(rec.Exc.Err))
	}

	h.zl.Log(zapLevel(rec.Level), rec.Message(), fields...)
	return nil
}

// zapLevel maps the facility's scale to zap's. CRITICAL maps to zap's
// ERROR: zap's FATAL exits the process and DPANIC may panic, neither of
// which a bridge is allowed to do.
func zapLevel(l core.Level) zapcore.Level {
	switch {
	case l >= core.ErrorLevel:
		return zapcore.ErrorLevel
	case l >= core.WarningLevel:
		return zapcore.WarnLevel
	case l >= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Close flushes the underlying zap logger
func (h *ZapHandler) Close() error {
	return h.zl.Sync()
}
