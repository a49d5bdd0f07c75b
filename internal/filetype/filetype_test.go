package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"HELLO.FOR", "FORTRAN source file"},
		{"main.c", "C source file"},
		{"MAIN.C", "C source file"},
		{"defs.h", "C header file"},
		{"prog.PAS", "PASCAL source file"},
		{"AUTOEXEC.BAT", "DOS batch file"},
		{"readme.md", "Markdown file"},
		{"notes.txt", "Text file"},
		{"weird.zzz", ""},
		{"noextension", ""},
		{"", ""},
		{"dir.with.dots/file.cob", "COBOL source file"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.filename))
		})
	}
}
