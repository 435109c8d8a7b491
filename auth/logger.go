package auth

import "github.com/sirupsen/logrus"

// log is the package logger. It reports body truncation during signing and
// emits the data-to-sign at debug level.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Passing nil restores the logrus
// standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		log = logrus.StandardLogger()
		return
	}

	log = l
}
