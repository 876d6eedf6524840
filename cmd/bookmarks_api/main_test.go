package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "cleandb"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestCleanDB_RequiresConfirmation(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"cleandb"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		assert.NotNil(t, setupLogger(env), env)
	}
}
