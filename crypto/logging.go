package crypto

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LoggerHelper carries the fields shared by one crypto operation.
//
// Passwords, derived keys and plaintext must never be attached. Obfuscated
// or armored buffers may be summarized with SecureFieldHash.
type LoggerHelper struct {
	function string
	fields   logrus.Fields
}

// NewLogger starts a helper tagged with the function and package names.
func NewLogger(function string) *LoggerHelper {
	return &LoggerHelper{
		function: function,
		fields:   logrus.Fields{"function": function, "package": "crypto"},
	}
}

// WithField sets one field.
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	l.fields[key] = value
	return l
}

// WithFields merges fields into the helper.
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

// WithError records err along with a short classification and the step
// that produced it.
func (l *LoggerHelper) WithError(err error, errorType, operation string) *LoggerHelper {
	return l.WithFields(logrus.Fields{
		"error":      err.Error(),
		"error_type": errorType,
		"operation":  operation,
	})
}

func (l *LoggerHelper) entry() *logrus.Entry {
	return logrus.WithFields(l.fields)
}

// Entry logs the start of an operation at Debug.
func (l *LoggerHelper) Entry(message string) {
	l.entry().Debugf("Function entry: %s", message)
}

// Exit logs the end of the operation at Debug.
func (l *LoggerHelper) Exit() {
	l.entry().Debugf("Function exit: %s", l.function)
}

// Debug logs message at Debug.
func (l *LoggerHelper) Debug(message string) {
	l.entry().Debug(message)
}

// Error logs message at Error.
func (l *LoggerHelper) Error(message string) {
	l.entry().Error(message)
}

// SecureFieldHash summarizes obfuscated data as "<name>_size" and a hex
// "<name>_preview" of at most 8 bytes.
func SecureFieldHash(data []byte, name string) logrus.Fields {
	preview := "nil"
	if n := min(len(data), 8); n > 0 {
		preview = fmt.Sprintf("%x", data[:n])
		if len(data) > n {
			preview += "..."
		}
	}
	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}

// OperationFields returns operation and status fields merged with any extras.
func OperationFields(operation, status string, additional ...logrus.Fields) logrus.Fields {
	fields := logrus.Fields{"operation": operation, "status": status}
	for _, extra := range additional {
		for k, v := range extra {
			fields[k] = v
		}
	}
	return fields
}
