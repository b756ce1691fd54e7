package btoi

import "github.com/histdb/btoi/parse"

// ParseError is the reason bytes could not be parsed.
type ParseError = parse.Error

const (
	Empty        = parse.Empty
	InvalidDigit = parse.InvalidDigit
	PosOverflow  = parse.PosOverflow
	NegOverflow  = parse.NegOverflow
)
