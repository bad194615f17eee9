package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"cimforge/internal/cli"
	"cimforge/internal/knowledge"
	"cimforge/internal/llm"
	"cimforge/internal/orchestrator"
	"cimforge/internal/prompt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine knowledge directory: env var, ./knowledge (development),
	// then ~/.cimforge/knowledge.
	knowledgeDir := os.Getenv("CIMFORGE_KNOWLEDGE_DIR")
	if knowledgeDir == "" {
		if stat, err := os.Stat("./knowledge"); err == nil && stat.IsDir() {
			knowledgeDir = "./knowledge"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			knowledgeDir = filepath.Join(home, ".cimforge", "knowledge")
		}
	}

	loader, err := knowledge.LoadDir(knowledgeDir)
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}

	session := orchestrator.NewSession()
	if !loader.Empty() {
		session.MarkKnowledgeLoaded()
	}

	app := &cli.App{
		Session:  session,
		Compiler: prompt.Compiler{Knowledge: loader},
	}

	// Wire the chat backend. Commands that only inspect state work without
	// one, so a misconfigured backend is reported at `chat` time instead of
	// failing every invocation.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	if client, err := llm.New(llmCfg, observer); err == nil {
		app.Chat = client
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		// Plain output when piped; the chat REPL still requires a terminal.
		os.Setenv("NO_COLOR", "1")
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
