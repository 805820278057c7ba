package handoff

import "errors"

var (
	ErrUnexpectedEndOfStream = errors.New("handoff: unexpected end of stream")
	ErrUnknownCommand        = errors.New("handoff: unknown command")
	ErrEntryPointResolution  = errors.New("handoff: entry point resolution failed")
	ErrLineSource            = errors.New("handoff: line source failed")
	ErrAlreadyLaunched       = errors.New("handoff: already launched")
	ErrUnencodable           = errors.New("handoff: value not encodable")
)
