package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerb(t *testing.T) {
	tests := []struct {
		name string
		want Verb
	}{
		{"ls", VerbLs},
		{"cd", VerbCd},
		{"exit", VerbExit},
		{"head", VerbHead},
		{"cp", VerbCp},
		{"du", VerbDu},
		{"LS", VerbUnknown},
		{"pwd", VerbUnknown},
		{"", VerbUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVerb(tt.name))
		})
	}
}

func TestVerb_String(t *testing.T) {
	assert.Equal(t, "cp", VerbCp.String())
	assert.Equal(t, "du", VerbDu.String())
	assert.Equal(t, "unknown", VerbUnknown.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
		want   Command
	}{
		{"empty", "", false, Command{}},
		{"blank", " \t ", false, Command{}},
		{"bare verb", "ls", true, Command{Verb: VerbLs, Name: "ls", Args: []string{}}},
		{"two args", "cp a b", true, Command{Verb: VerbCp, Name: "cp", Args: []string{"a", "b"}}},
		{"padding", "  head   notes.txt  ", true, Command{Verb: VerbHead, Name: "head", Args: []string{"notes.txt"}}},
		{"unknown", "rm -rf x", true, Command{Verb: VerbUnknown, Name: "rm", Args: []string{"-rf", "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Parse(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestCommand_Arg(t *testing.T) {
	cmd, _ := Parse("cp source.txt")
	assert.Equal(t, "source.txt", cmd.Arg(0))
	assert.Equal(t, "", cmd.Arg(1))
	assert.Equal(t, "", cmd.Arg(-1))
}

func TestReference_CoversEveryVerb(t *testing.T) {
	seen := make(map[Verb]bool)
	for _, info := range Reference() {
		assert.NotEmpty(t, info.Usage)
		assert.NotEmpty(t, info.Description)
		seen[info.Verb] = true
	}
	for _, v := range verbNames {
		assert.True(t, seen[v], "missing reference for %s", v)
	}
}
