package dd

import dderrors "github.com/KimNorgaard/go-dd/errors"

// Error types returned by this package. They are defined in package
// errors so that internal packages can return them too.
type (
	MalformedSectionError = dderrors.MalformedSectionError
	MissingSectionError   = dderrors.MissingSectionError
	MissingFieldError     = dderrors.MissingFieldError
	FieldTypeError        = dderrors.FieldTypeError
	MalformedNoteError    = dderrors.MalformedNoteError
	MalformedEventError   = dderrors.MalformedEventError
	UnknownEventError     = dderrors.UnknownEventError
	UnencodableError      = dderrors.UnencodableError
)
