package errs

import (
	// Internal
	"github.com/yididiel7/fresh/log"
)

// Err annotates an error with the task that failed and an optional hint,
// typically the stderr output of the subprocess that caused the failure.
type Err struct {
	task string
	err  error
	hint string
}

func NewError(task string, err error) error {
	return NewErrorWithHint(task, err, "")
}

func NewErrorWithHint(task string, err error, hint string) error {
	return &Err{task, err, hint}
}

func (err *Err) Error() string {
	return err.err.Error()
}

func (err *Err) Task() string {
	return err.task
}

func (err *Err) Hint() string {
	return err.hint
}

func (err *Err) Unwrap() error {
	return err.err
}

// RootCause returns the error at the bottom of the error chain.
func RootCause(err error) error {
	for {
		ex, ok := err.(*Err)
		if !ok {
			return err
		}
		err = ex.err
	}
}

// Log prints the task trail and the hints collected in the error chain,
// then returns the error unchanged so that it can be passed on.
func Log(err error) error {
	LogWith(err, log.V(log.Info))
	return err
}

func LogWith(err error, logger log.Logger) {
	for {
		ex, ok := err.(*Err)
		if !ok {
			return
		}
		if ex.task != "" {
			logger.Fail(ex.task)
		}
		if ex.hint != "" {
			logger.Stderr(ex.hint)
		}
		err = ex.err
	}
}

// Fatal logs the error and terminates the process with exit code 1.
func Fatal(err error) {
	Log(err)
	log.Fatalln("\nError: " + RootCause(err).Error())
}
