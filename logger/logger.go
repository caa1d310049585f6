package logger

import (
	"encoding/json"

	"github.com/mager/talentfinder/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ProvideLogger provides a zap logger
func ProvideLogger(cfg config.Config) (*zap.SugaredLogger, error) {
	rawJSON := []byte(`{
	  "level": "info",
	  "encoding": "json",
	  "outputPaths": ["stdout"],
	  "errorOutputPaths": ["stderr"],
	  "encoderConfig": {
	    "messageKey": "message",
	    "levelKey": "level",
	    "timeKey": "ts",
	    "levelEncoder": "lowercase",
	    "timeEncoder": "iso8601"
	  }
	}`)

	var zcfg zap.Config
	if err := json.Unmarshal(rawJSON, &zcfg); err != nil {
		return nil, err
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// NewTestLogger returns a new logger and observed logs for testing.
func NewTestLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zap.DebugLevel)
	return zap.New(core).Sugar(), recorded
}

var Options = ProvideLogger
