// Completion: 100% - Target dispatch complete
package objfile

import (
	"fmt"
	"strings"
)

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchX86_64
	ArchARM64
)

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX86_64:
		return "x86_64"
	case ArchARM64:
		return "arm64"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string (like GOARCH values)
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86", "386", "i386", "i686":
		return ArchX86, nil
	case "x86_64", "amd64", "x86-64":
		return ArchX86_64, nil
	case "arm64", "aarch64":
		return ArchARM64, nil
	default:
		return 0, fmt.Errorf("unsupported architecture: %s (supported: x86, x86_64, arm64)", s)
	}
}

// Format is the object container format
type Format int

const (
	FormatUnknown Format = iota
	FormatELF
	FormatCOFF
	FormatMachO
)

func (f Format) String() string {
	switch f {
	case FormatELF:
		return "elf"
	case FormatCOFF:
		return "coff"
	case FormatMachO:
		return "mach-o"
	default:
		return "unknown"
	}
}

// ParseFormat parses an object format string
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "elf":
		return FormatELF, nil
	case "coff", "pe":
		return FormatCOFF, nil
	case "macho", "mach-o":
		return FormatMachO, nil
	default:
		return 0, fmt.Errorf("unsupported format: %s (supported: elf, coff, mach-o)", s)
	}
}

// target bundles everything the encoders need to know about an
// architecture, resolved once per Encode call.
type target struct {
	arch         Arch
	is64         bool
	elfMachine   uint16 // e_machine
	coffMachine  uint16 // IMAGE_FILE_MACHINE_*
	machoCPU     uint32 // CPU_TYPE_*
	machoSubCPU  uint32 // CPU_SUBTYPE_*
	coffDecorate bool   // leading underscore on COFF exports
}

var targets = map[Arch]target{
	ArchX86: {
		arch:         ArchX86,
		is64:         false,
		elfMachine:   0x0003, // EM_386
		coffMachine:  0x014c, // IMAGE_FILE_MACHINE_I386
		machoCPU:     0x00000007,
		machoSubCPU:  0x00000003,
		coffDecorate: true,
	},
	ArchX86_64: {
		arch:        ArchX86_64,
		is64:        true,
		elfMachine:  0x003e, // EM_X86_64
		coffMachine: 0x8664, // IMAGE_FILE_MACHINE_AMD64
		machoCPU:    0x01000007,
		machoSubCPU: 0x00000003,
	},
	ArchARM64: {
		arch:        ArchARM64,
		is64:        true,
		elfMachine:  0x00b7, // EM_AARCH64
		coffMachine: 0xaa64, // IMAGE_FILE_MACHINE_ARM64
		machoCPU:    0x0100000c,
		machoSubCPU: 0x00000000,
	},
}
