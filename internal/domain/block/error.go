package block

import (
	"errors"
)

var (
	ErrEmptyContent   = errors.New("content is empty")
	ErrNotBase64      = errors.New("content is not base64")
	ErrNotBlockArray  = errors.New("content is not a JSON array of blocks")
	ErrNotBlockObject = errors.New("element is not a block object")
	ErrNotLegacyText  = errors.New("content is not legacy delimited text")
	ErrUndecodable    = errors.New("content matches no known encoding")
	ErrUnsupportedTag = errors.New("unsupported block type")
)
