package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

func resetRecipientFlags() {
	recipientAddName = ""
	recipientAddTitle = ""
	recipientAddAddr = ""
	for _, name := range []string{"name", "title", "address"} {
		recipientAddCmd.Flags().Lookup(name).Changed = false
	}
}

func TestRecipientCmd_Use(t *testing.T) {
	assert.Equal(t, "recipient", recipientCmd.Use)
}

func TestRecipientAddCmd_SavesProfile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recipient", "add",
		"--name", "Jordan Blake",
		"--title", "Hiring Manager",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		resetRecipientFlags()
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	mock := currentMockDraft()
	require.Len(t, mock.recipients, 1)
	assert.Equal(t, "Jordan Blake", mock.recipients[0].Recipient.Name)
	assert.Contains(t, buf.String(), "Saved recipient Jordan Blake")
}

func TestRecipientListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recipient", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No saved recipients.")
}

func TestRecipientListCmd_ShowsProfiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := currentMockDraft()
	_, err := mock.SaveRecipient(context.Background(), domain.Recipient{Name: "Alice", Title: "Director"})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recipient", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Alice (Director)")
}

func TestRecipientRemoveCmd_RemovesProfile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := currentMockDraft()
	saved, err := mock.SaveRecipient(context.Background(), domain.Recipient{Name: "Alice"})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recipient", "remove", saved.ID})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Empty(t, mock.recipients)
	assert.Contains(t, buf.String(), "Recipient removed.")
}

func TestRecipientRemoveCmd_UnknownID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recipient", "remove", "rcpt-404"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no recipient with id rcpt-404")
}

func TestRecipientCmd_ServiceNotConfigured(t *testing.T) {
	oldService := draftService
	draftService = nil
	defer func() {
		draftService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recipient", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "draft service not configured")
}
