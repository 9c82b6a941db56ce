package domain

import "fmt"

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeInvalidInput ErrCode = "invalid_input"
	CodeNotFound     ErrCode = "not_found"
	CodeInternal     ErrCode = "internal_error"
)

// AppError is returned by the layers around the engine (snapshot decoding,
// configuration, output). The engine itself never fails.
type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
	Err     error
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Meta) > 0 {
		msg = fmt.Sprintf("%s (%v)", msg, e.Meta)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrInvalidInput(msg string, err error) error {
	return &AppError{Code: CodeInvalidInput, Message: msg, Err: err}
}
func ErrNotFound(msg string) error { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string, err error) error {
	return &AppError{Code: CodeInternal, Message: msg, Err: err}
}
