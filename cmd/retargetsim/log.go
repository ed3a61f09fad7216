package main

import (
	"os"

	"github.com/joulecoin/jouled/infrastructure/logger"
	"github.com/pkg/errors"
)

var (
	backendLog = logger.BackendLog()
	log, _     = logger.Get(logger.SubsystemTags.RTSM)
)

func initLog(logFile, errLogFile, logLevel string) error {
	level, ok := logger.LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("invalid log level %s", logLevel)
	}
	err := backendLog.AddLogWriter(os.Stdout, level)
	if err != nil {
		return err
	}
	err = backendLog.AddLogFile(logFile, logger.LevelTrace)
	if err != nil {
		return err
	}
	err = backendLog.AddLogFile(errLogFile, logger.LevelWarn)
	if err != nil {
		return err
	}
	err = backendLog.Run()
	if err != nil {
		return err
	}
	return logger.SetLogLevels(logLevel)
}
