package fileio

import "log"

// Notifier receives the outcome of a file operation.
type Notifier interface {
	// Succeeded is called with the path of the written file.
	Succeeded(op, path string)
	// Failed is called with the error that stopped the operation.
	Failed(op string, err error)
}

// Run calls fn and reports its outcome to n. A nil n discards the report.
// The result of fn is returned unchanged.
func Run(op string, fn func() (string, error), n Notifier) (string, error) {
	path, err := fn()
	if n == nil {
		return path, err
	}

	if err != nil {
		n.Failed(op, err)
	} else {
		n.Succeeded(op, path)
	}

	return path, err
}

// LogNotifier reports outcomes through a *log.Logger.
type LogNotifier struct {
	Logger *log.Logger
}

var _ Notifier = LogNotifier{}

// Succeeded implements Notifier.
func (l LogNotifier) Succeeded(op, path string) {
	l.logger().Printf("%s succeeded: %s", op, path)
}

// Failed implements Notifier.
func (l LogNotifier) Failed(op string, err error) {
	l.logger().Printf("%s failed: %v", op, err)
}

func (l LogNotifier) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}

	return l.Logger
}
