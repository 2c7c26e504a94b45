package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "casetrack.db"))
	t.Setenv("MEILISEARCH_HOST", "")
	t.Setenv("REDIS_URL", "")
}

func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "create-user", "reindex"})
}

func TestRootCmd_FlagsDoNotLeakAcrossInstances(t *testing.T) {
	first, _, err := newRootCmd().Find([]string{"create-user"})
	require.NoError(t, err)
	require.NoError(t, first.Flags().Set("role", "admin"))

	second, _, err := newRootCmd().Find([]string{"create-user"})
	require.NoError(t, err)
	role, err := second.Flags().GetString("role")
	require.NoError(t, err)
	assert.Equal(t, "staff", role)
}

func TestCreateUserCmd(t *testing.T) {
	setTestEnv(t)

	out, err := execute(t, newRootCmd(), "create-user", "--email", "worker@example.org", "--password", "longenough1")
	require.NoError(t, err)
	assert.Contains(t, out, "created worker@example.org (staff)")

	out, err = execute(t, newRootCmd(), "create-user", "--email", "worker@example.org", "--password", "longenough1")
	require.NoError(t, err)
	assert.Contains(t, out, "worker@example.org already exists")
}

func TestReindexCmd_RequiresSearchHost(t *testing.T) {
	setTestEnv(t)

	_, err := execute(t, newRootCmd(), "reindex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEILISEARCH_HOST")
}
