// Completion: 100% - Symbol naming complete
package objfile

import "regexp"

// symbol.go - Export name derivation
//
// Each invocation exports exactly three linker symbols derived from the
// caller's base name: <name>_data, <name>_end and <name>_size. Platform
// convention decides whether they carry a leading underscore: Mach-O
// always decorates, COFF decorates only on 32-bit x86, ELF never does.

var symbolNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidSymbolName reports whether name is a valid C identifier
func ValidSymbolName(name string) bool {
	return symbolNamePattern.MatchString(name)
}

// SymbolNames holds the three derived export names, already decorated
type SymbolNames struct {
	Data string
	End  string
	Size string
}

// deriveSymbolNames builds the export names from the base name.
// decorate adds the platform's leading underscore.
func deriveSymbolNames(base string, decorate bool) SymbolNames {
	prefix := ""
	if decorate {
		prefix = "_"
	}
	return SymbolNames{
		Data: prefix + base + "_data",
		End:  prefix + base + "_end",
		Size: prefix + base + "_size",
	}
}

// ExportedNames returns the three symbol names Encode will emit for the
// given base name, format and architecture. Used by the CLI summary.
func ExportedNames(base string, format Format, arch Arch) SymbolNames {
	decorate := false
	switch format {
	case FormatMachO:
		decorate = true
	case FormatCOFF:
		decorate = arch == ArchX86
	}
	return deriveSymbolNames(base, decorate)
}
