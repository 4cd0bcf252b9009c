package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	ErrSequenceNotGreater     = errors.New("invoice sequence must exceed the highest existing sequence")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed           = errors.New("file upload to storage failed")
	ErrInvalidUploadFolder    = errors.New("invalid upload folder")
	ErrClientHasNoEmail       = errors.New("client has no email address on record")
)
