package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cimforge/internal/domain"
	"cimforge/internal/orchestrator"
	"cimforge/internal/prompt"
)

func testApp() *App {
	return &App{
		Session:  orchestrator.NewSession(),
		Compiler: prompt.Compiler{},
	}
}

func runCmd(t *testing.T, app *App, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := NewRootCmd(testApp())
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"chat", "setup", "prompt", "status", "stages"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestPromptCmd(t *testing.T) {
	out := runCmd(t, testApp(), "prompt")
	assert.Contains(t, out, "## Current Stage: WELCOME")
	assert.Contains(t, out, "## CRITICAL RULES")
}

func TestPromptCmdCached(t *testing.T) {
	out := runCmd(t, testApp(), "prompt", "--cached")
	assert.Contains(t, out, "STATIC (CACHED PREFIX)")
	assert.Contains(t, out, "DYNAMIC (PER REQUEST)")
	assert.Contains(t, out, "cacheable")
}

func TestStatusCmd(t *testing.T) {
	app := testApp()
	app.Session.SetCompanyName("Meridian Analytics")
	out := runCmd(t, app, "status")
	assert.Contains(t, out, "MERIDIAN ANALYTICS")
	assert.Contains(t, out, "Not yet defined.")
	assert.Contains(t, out, "Not yet created.")
}

func TestStagesCmd(t *testing.T) {
	out := runCmd(t, testApp(), "stages")
	for _, stage := range domain.StageOrder {
		assert.Contains(t, out, prompt.StageLabel(stage))
	}
	assert.Equal(t, 7, strings.Count(out, ". "))
}

func TestChatCmdWithoutBackend(t *testing.T) {
	root := NewRootCmd(testApp())
	root.SetArgs([]string{"chat"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no chat backend configured")
}
