package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError - некорректные или отсутствующие поля заказа, неизвестный тип.
type ValidationError struct {
	Message string
	Err     error
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RemoteError - отказ сервиса вычислений. Code опционален.
type RemoteError struct {
	Message string
	Code    *int
	Err     error
}

func NewRemoteError(message string, code *int, err error) *RemoteError {
	return &RemoteError{Message: message, Code: code, Err: err}
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if e.Code != nil {
		msg = fmt.Sprintf("%s (code %d)", msg, *e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// FileOperationError - отказ файловой выгрузки. Path опционален.
type FileOperationError struct {
	Message string
	Path    string
	Err     error
}

func NewFileOperationError(message, path string, err error) *FileOperationError {
	return &FileOperationError{Message: message, Path: path, Err: err}
}

func (e *FileOperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FileOperationError) Unwrap() error {
	return e.Err
}

// PersistenceError - ошибка хранилища. Query содержит текст запроса, если он известен.
type PersistenceError struct {
	Message string
	Query   string
	Err     error
}

func NewPersistenceError(message, query string, err error) *PersistenceError {
	return &PersistenceError{Message: message, Query: query, Err: err}
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsRemote(err error) bool {
	var target *RemoteError
	return errors.As(err, &target)
}

func IsFileOperation(err error) bool {
	var target *FileOperationError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
