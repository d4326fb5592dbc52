package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeInvalidCatalog ErrorType = iota
	ErrTypeAssetNotFound
	ErrTypeConfig
	ErrTypeRender
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidCatalog:
		return "invalid catalog"
	case ErrTypeAssetNotFound:
		return "asset not found"
	case ErrTypeConfig:
		return "config"
	case ErrTypeRender:
		return "render"
	default:
		return "generic"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether any error in err's chain is a CustomError of the given type.
func IsType(err error, errType ErrorType) bool {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Type == errType
	}
	return false
}
