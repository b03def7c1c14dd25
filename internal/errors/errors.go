// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// ConfigurationError represent a configuration error. When used, it should ideally also point towards the configuration
// value that caused this error to occur.
type ConfigurationError struct {
	E           error
	description string
	resolution  string
}

// NewConfigurationError returns a new ConfigurationError. Description and resolution are optional and only used when
// the error is decorated for end-users.
func NewConfigurationError(title, description, resolution string) ConfigurationError {
	return ConfigurationError{E: xerrors.New(title), description: description, resolution: resolution}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

func (e ConfigurationError) Error() string       { return e.E.Error() }
func (e ConfigurationError) Unwrap() error       { return e.E }
func (e ConfigurationError) Description() string { return e.description }
func (e ConfigurationError) Resolution() string  { return e.resolution }
func (e ConfigurationError) Type() string        { return "Configuration Error" }

// CorrelationError is returned when several result files are imported into the same Test Execution, but the first
// upload did not yield a Test Execution key to merge the remaining files into.
type CorrelationError struct {
	E error
}

// NewCorrelationError returns a new CorrelationError
func NewCorrelationError(msg string, a ...any) CorrelationError {
	return CorrelationError{E: xerrors.Errorf(msg, a...)}
}

// AsCorrelationError checks whether the error is a correlation error
func AsCorrelationError(err error) (CorrelationError, bool) {
	var e CorrelationError
	ok := As(err, &e)
	return e, ok
}

func (e CorrelationError) Error() string { return e.E.Error() }
func (e CorrelationError) Unwrap() error { return e.E }

func (e CorrelationError) Description() string {
	return "Importing into the same Test Execution requires Xray to return the key of the Test Execution created " +
		"by the first upload. Files that were already uploaded are not rolled back."
}

func (e CorrelationError) Resolution() string {
	return "Set an explicit Test Execution key or disable importing to the same Test Execution."
}

func (e CorrelationError) Type() string { return "Correlation Error" }

// InputError is an error caused by user input
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

func (e InputError) Error() string { return e.E.Error() }
func (e InputError) Unwrap() error { return e.E }

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it and would
// need to reach out to us for support.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

func (e InternalError) Error() string { return e.E.Error() }
func (e InternalError) Unwrap() error { return e.E }

// ProviderError is returned when Xray answered a request with a non-successful status code. The raw response body is
// kept so it can be shown to the user.
type ProviderError struct {
	E          error
	StatusCode int
	Body       string
}

// NewProviderError returns a new ProviderError
func NewProviderError(statusCode int, body string, msg string, a ...any) ProviderError {
	return ProviderError{E: xerrors.Errorf(msg, a...), StatusCode: statusCode, Body: body}
}

// AsProviderError checks whether the error is a provider error
func AsProviderError(err error) (ProviderError, bool) {
	var e ProviderError
	ok := As(err, &e)
	return e, ok
}

func (e ProviderError) Error() string { return e.E.Error() }
func (e ProviderError) Unwrap() error { return e.E }

// SystemError is returned when the CLI encountered a system error. This is most likely either an error during file read
// or a network error.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

func (e SystemError) Error() string { return e.E.Error() }
func (e SystemError) Unwrap() error { return e.E }
