package objfile

import "testing"

func TestValidSymbolName(t *testing.T) {
	valid := []string{"a", "_", "my_data", "_leading", "x123", "CamelCase", "UPPER"}
	for _, name := range valid {
		if !ValidSymbolName(name) {
			t.Errorf("ValidSymbolName(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "1abc", "a-b", "with space", "dot.name", "héllo", "a+b"}
	for _, name := range invalid {
		if ValidSymbolName(name) {
			t.Errorf("ValidSymbolName(%q) = true, want false", name)
		}
	}
}

// TestExportedNames covers the per-platform underscore decoration rules:
// Mach-O always decorates, COFF only on 32-bit x86, ELF never.
func TestExportedNames(t *testing.T) {
	tests := []struct {
		format Format
		arch   Arch
		data   string
	}{
		{FormatELF, ArchX86, "test_data"},
		{FormatELF, ArchX86_64, "test_data"},
		{FormatELF, ArchARM64, "test_data"},
		{FormatCOFF, ArchX86, "_test_data"},
		{FormatCOFF, ArchX86_64, "test_data"},
		{FormatCOFF, ArchARM64, "test_data"},
		{FormatMachO, ArchX86, "_test_data"},
		{FormatMachO, ArchX86_64, "_test_data"},
		{FormatMachO, ArchARM64, "_test_data"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String()+"/"+tt.arch.String(), func(t *testing.T) {
			names := ExportedNames("test", tt.format, tt.arch)
			if names.Data != tt.data {
				t.Errorf("Data = %q, want %q", names.Data, tt.data)
			}
			wantEnd := tt.data[:len(tt.data)-len("_data")] + "_end"
			if names.End != wantEnd {
				t.Errorf("End = %q, want %q", names.End, wantEnd)
			}
			wantSize := tt.data[:len(tt.data)-len("_data")] + "_size"
			if names.Size != wantSize {
				t.Errorf("Size = %q, want %q", names.Size, wantSize)
			}
		})
	}
}

func TestParseArch(t *testing.T) {
	tests := []struct {
		in   string
		want Arch
	}{
		{"x86", ArchX86}, {"386", ArchX86}, {"i386", ArchX86},
		{"x86_64", ArchX86_64}, {"amd64", ArchX86_64}, {"X86-64", ArchX86_64},
		{"arm64", ArchARM64}, {"aarch64", ArchARM64},
	}
	for _, tt := range tests {
		got, err := ParseArch(tt.in)
		if err != nil {
			t.Errorf("ParseArch(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseArch("riscv64"); err == nil {
		t.Error("ParseArch(\"riscv64\") succeeded, want error")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"elf", FormatELF}, {"ELF", FormatELF},
		{"coff", FormatCOFF}, {"pe", FormatCOFF},
		{"macho", FormatMachO}, {"mach-o", FormatMachO},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("wasm"); err == nil {
		t.Error("ParseFormat(\"wasm\") succeeded, want error")
	}
}
