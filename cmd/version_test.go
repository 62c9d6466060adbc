package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "languages\t go, javascript, lua, php, python")
	assert.Contains(t, output, ".phtml")

	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "glotscan version")
	assert.Contains(t, output, "go version")
}
