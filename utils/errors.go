package utils

// CustomError digunakan untuk error dengan status code yang spesifik.
// Code is a stable machine-readable kind; Err keeps the underlying
// cause for logging while Message stays generic for clients.
type CustomError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError Fungsi helper untuk membuat CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WrapError builds a CustomError that keeps the underlying cause.
func WrapError(statusCode int, code, message string, err error) *CustomError {
	return &CustomError{StatusCode: statusCode, Code: code, Message: message, Err: err}
}
