package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "otzar", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "concordance")
	assert.Contains(t, commandNames, "config")
	assert.Contains(t, commandNames, "lexicon")
	assert.Contains(t, commandNames, "dict")
	assert.Contains(t, commandNames, "lookup")
	assert.Contains(t, commandNames, "modern")
	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "mcp")
	assert.Contains(t, commandNames, "tui")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}
