package errx

import "fmt"

// definition is the registered template for an error code
type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain package. Each package
// creates its own registry with a unique prefix and registers codes at init.
type Registry struct {
	prefix string
	defs   map[Code]definition
}

// NewRegistry creates an error registry with the given code prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register defines an error code and returns its fully qualified Code.
// Registering the same code twice panics; codes are package-level constants
// registered once at startup.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := Code(fmt.Sprintf("%s_%s", r.prefix, code))
	if _, exists := r.defs[full]; exists {
		panic(fmt.Sprintf("errx: duplicate error code %s", full))
	}
	r.defs[full] = definition{
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an *Error from a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.defs[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "unregistered error code",
			HTTPStatus: 500,
		}
	}
	return &Error{
		Type:       def.errType,
		Code:       code,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause creates an *Error from a registered code wrapping a cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.cause = cause
	return e
}
