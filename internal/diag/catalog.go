package diag

// Code is one of the fixed diagnostic codes spec §6 defines.
type Code string

const (
	CodeModuleNotFound      Code = "E0101"
	CodeInvalidToken        Code = "E0201"
	CodeUnrecognizedEOF     Code = "E0202"
	CodeUnrecognizedToken   Code = "E0203"
	CodeExtraToken          Code = "E0204"
	CodeGenericParserError  Code = "E0299"
	CodeUnknownInstruction  Code = "E0301"
	CodeGenericRuntimeError Code = "E0399"
)

// Error message templates, gathered in one place rather than scattered
// across the packages that raise them — the teacher's own
// internal/interp/errors/catalog.go convention.
const (
	ErrMsgModuleNotFound      = "module not found: %s"
	ErrMsgUnknownInstruction  = "the evaluator has no case for %s"
	ErrMsgPropertyOnScalar    = "cannot access a property of a %s"
	ErrMsgInvalidArrayIndex   = "invalid array index: %s"
	ErrMsgHeapKindMismatch    = "expected %s, got %s"
	ErrMsgCallOnNonFunction   = "cannot call a %s"
	ErrMsgKeysOnArray         = "cannot get keys of an array"
)
