package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Wrap runs fn between Start and Complete/Error log lines named after
// loggingName. A panic inside fn is recovered and reported as an error.
func Wrap(loggingName string, log logrus.FieldLogger, fn func(*LogData) error) (err error) {
	logData := NewLogData(log)

	log.Infof("Runner.%v.Start", loggingName)

	endTimer := logData.AddTiming("duration_ms")
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Runner.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Runner.%v.Complete", loggingName)
	}()

	return fn(logData)
}
