// Completion: 100% - Encoder entry point complete
package objfile

import "fmt"

// objfile.go - Object file encoding entry point
//
// Encode turns a binary blob into a relocatable object file that exports
// three linker symbols: <name>_data, <name>_end and <name>_size. The caller
// picks the container format (ELF, COFF, Mach-O) and target architecture
// (x86, x86_64, arm64); everything else is derived.

// ValidationError reports invalid caller input, detected before any
// encoding work starts.
type ValidationError struct {
	Field string // "symbol name", "alignment", ...
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Msg)
}

// EncodingError reports an unsupported format/architecture pairing or an
// internal layout invariant violation.
type EncodingError struct {
	Format Format
	Arch   Arch
	Msg    string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s/%s: %s", e.Format, e.Arch, e.Msg)
}

// encodeFunc assembles a complete object file for one container format.
// data is the raw blob; alignment has already been validated.
type encodeFunc func(t *target, data []byte, symbolName string, alignment uint32) []byte

// Closed dispatch table; one pure encoder per format.
var encoders = map[Format]encodeFunc{
	FormatELF:   encodeELF,
	FormatCOFF:  encodeCOFF,
	FormatMachO: encodeMachO,
}

// Encode produces an object file embedding blob under the given symbol
// base name. The returned buffer is complete and self-contained; nothing
// is written anywhere. Identical inputs produce identical output.
func Encode(blob []byte, symbolName string, alignment uint32, arch Arch, format Format) ([]byte, error) {
	if !ValidSymbolName(symbolName) {
		return nil, &ValidationError{
			Field: "symbol name",
			Value: symbolName,
			Msg:   "must be a valid C identifier (letter or underscore, then letters, digits, underscores)",
		}
	}
	if !isPowerOfTwo(alignment) {
		return nil, &ValidationError{
			Field: "alignment",
			Value: fmt.Sprintf("%d", alignment),
			Msg:   "must be a positive power of two",
		}
	}

	t, ok := targets[arch]
	if !ok {
		return nil, &EncodingError{Format: format, Arch: arch, Msg: "unknown architecture"}
	}
	encode, ok := encoders[format]
	if !ok {
		return nil, &EncodingError{Format: format, Arch: arch, Msg: "unknown format"}
	}

	return encode(&t, blob, symbolName, alignment), nil
}
