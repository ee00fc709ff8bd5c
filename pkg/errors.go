package pkg

import "fmt"

// AppError is the transport-facing error returned by the HTTP layer.
//
// Code is a stable machine-readable identifier, Message is safe to show to the
// caller and Err keeps the underlying cause for logs only.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HTTPError struct {
	Success bool          `json:"success"`
	Error   HTTPErrorBody `json:"error"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Error: HTTPErrorBody{
			Code:    e.Code,
			Message: e.Message,
		},
	}
}
