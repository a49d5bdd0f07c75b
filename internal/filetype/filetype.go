// Package filetype maps file extensions to the human-readable descriptions
// shown in the visual-mode status bar. The table leans retro on purpose.
package filetype

import (
	"path/filepath"
	"strings"
)

var byExtension = map[string]string{
	// FORTRAN variants
	"for": "FORTRAN source file",
	"ftn": "FORTRAN source file",
	"f77": "FORTRAN source file",
	"f":   "FORTRAN source file",
	"f90": "FORTRAN source file",
	"f95": "FORTRAN source file",

	// Assembly
	"asm": "ASSEMBLER source file",
	"s":   "ASSEMBLER source file",

	// Subroutine libraries
	"sub": "SUBROUTINE source file",
	"sbr": "SUBROUTINE source file",

	// C / C++
	"c":   "C source file",
	"h":   "C header file",
	"cpp": "C++ source file",
	"cxx": "C++ source file",
	"cc":  "C++ source file",
	"hpp": "C++ header file",
	"hxx": "C++ header file",

	"pas": "PASCAL source file",
	"bas": "BASIC source file",
	"cob": "COBOL source file",
	"cbl": "COBOL source file",
	"pli": "PL/I source file",
	"pl1": "PL/I source file",
	"plm": "PL/M source file",
	"alg": "ALGOL source file",

	"algol": "ALGOL source file",

	// Batch / script
	"bat": "DOS batch file",
	"cmd": "Command script",

	// Documentation
	"txt": "Text file",
	"doc": "Document file",
	"md":  "Markdown file",

	// Data
	"dat": "Data file",
	"ini": "Configuration file",
	"cfg": "Configuration file",

	// Binary formats
	"hex": "Intel HEX file",
	"bin": "Binary file",
	"com": "DOS executable",
	"exe": "DOS executable",
	"obj": "Object file",
	"lib": "Library file",

	"mak": "Makefile",
}

// Describe returns a description of the file based on its extension,
// matching ASCII case-insensitively, or "" when unknown.
func Describe(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return byExtension[strings.ToLower(strings.TrimPrefix(ext, "."))]
}
