// Completion: 100% - CLI interface complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"github.com/zchrissirhcz/bin2obj/internal/objfile"
)

// A tiny tool that embeds binary blobs into linkable object files
// (ELF, COFF, Mach-O) for x86, x86_64 and arm64

const versionString = "bin2obj 1.0.0"

const (
	// Size thresholds in whole megabytes (1 MB = 1048576 bytes)
	warnSizeMB   = 500
	rejectSizeMB = 2048
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -i input.bin -o output.o -f format -s symbol [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  bin2obj -i data.bin -o data.o -f elf -s my_data
  bin2obj -i image.png -o image.obj -f coff -s image_data -a 32
  bin2obj -i asset.bin -o asset.o -f mach-o -s asset_data --arch arm64`)
}

// pick returns the long spelling when set, the short one otherwise
func pick(long, short string) string {
	if long != "" {
		return long
	}
	return short
}

func main() {
	var (
		inputShort   = flag.String("i", "", "input binary file")
		inputLong    = flag.String("input", "", "input binary file")
		outputShort  = flag.String("o", "", "output object file")
		outputLong   = flag.String("output", "", "output object file")
		formatShort  = flag.String("f", "", "output format (elf, coff, mach-o)")
		formatLong   = flag.String("format", "", "output format (elf, coff, mach-o)")
		symbolShort  = flag.String("s", "", "symbol name for the embedded data")
		symbolLong   = flag.String("symbol", "", "symbol name for the embedded data")
		alignFlag    = flag.Uint("a", 4, "data alignment in bytes (power of two)")
		alignLong    = flag.Uint("alignment", 0, "data alignment in bytes (power of two)")
		archFlag     = flag.String("arch", env.Str("BIN2OBJ_ARCH", "x86_64"), "target architecture (x86, x86_64, arm64)")
		versionShort = flag.Bool("V", false, "print version information and exit")
		version      = flag.Bool("version", false, "print version information and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *versionShort || *version {
		fmt.Println(versionString)
		return
	}

	inputPath := pick(*inputLong, *inputShort)
	outputPath := pick(*outputLong, *outputShort)
	formatStr := pick(*formatLong, pick(*formatShort, env.Str("BIN2OBJ_FORMAT")))
	symbolName := pick(*symbolLong, *symbolShort)
	alignment := uint32(*alignFlag)
	if *alignLong != 0 {
		alignment = uint32(*alignLong)
	}

	if inputPath == "" || outputPath == "" || formatStr == "" || symbolName == "" {
		reportf(LevelError, "input, output, format and symbol are all required")
		usage()
		os.Exit(1)
	}

	// Validate everything before touching the filesystem
	if !objfile.ValidSymbolName(symbolName) {
		exitf("invalid symbol name %q: must be a valid C identifier (start with letter or underscore, contain only letters, digits, and underscores)", symbolName)
	}
	if alignment == 0 || alignment&(alignment-1) != 0 {
		exitf("alignment must be a power of 2, got %d", alignment)
	}
	format, err := objfile.ParseFormat(formatStr)
	if err != nil {
		exitf("%v", err)
	}
	arch, err := objfile.ParseArch(*archFlag)
	if err != nil {
		exitf("%v", err)
	}

	blob, err := os.ReadFile(inputPath)
	if err != nil {
		exitf("reading input file: %v", err)
	}

	if len(blob) == 0 {
		reportf(LevelWarning, "input file is empty")
	}
	sizeMB := float64(len(blob)) / (1024.0 * 1024.0)
	if sizeMB > rejectSizeMB {
		reportf(LevelError, "input file is too large (%.1f MB, max recommended: 2 GB)", sizeMB)
		exitf("files larger than 2 GB may exceed object format limitations")
	} else if sizeMB > warnSizeMB {
		reportf(LevelWarning, "input file is large (%.1f MB)", sizeMB)
		reportf(LevelWarning, "this may increase link time and executable size")
	}

	obj, err := objfile.Encode(blob, symbolName, alignment, arch, format)
	if err != nil {
		exitf("generating object file: %v", err)
	}

	if err := os.WriteFile(outputPath, obj, 0o644); err != nil {
		exitf("writing output file: %v", err)
	}

	names := objfile.ExportedNames(symbolName, format, arch)
	fmt.Printf("Successfully created %s\n", outputPath)
	fmt.Printf("  Format: %s\n", strings.ToUpper(format.String()))
	fmt.Printf("  Architecture: %s\n", arch)
	fmt.Printf("  Symbol: %s (size: %d bytes)\n", symbolName, len(blob))
	fmt.Printf("  Alignment: %d bytes\n", alignment)
	fmt.Println("  Symbols generated:")
	fmt.Printf("    - %s\n", names.Data)
	fmt.Printf("    - %s\n", names.End)
	fmt.Printf("    - %s\n", names.Size)
}
