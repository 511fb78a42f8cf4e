package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dedshivam/code4edutech/internal/llm"
)

// resolveAPIKey prefers the flag value over the GEMINI_API_KEY variable.
// An empty result is valid: the engine runs in deterministic fallback mode
// without a key.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// newOptionalClient builds an LLM client when a key is available. Without
// a key it returns nil, which downstream components treat as fallback
// mode rather than an error.
func newOptionalClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		return nil, nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// resolveDatabaseURL prefers the flag value over the DATABASE_URL
// variable. Empty means no persistence.
func resolveDatabaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

// firstLine returns the first non-empty line of text, used as a default
// job title when none is given.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "Untitled role"
}

// readTextFile reads a file and fails with a flag-oriented message.
func readTextFile(path, flagName string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s file: %w", flagName, err)
	}
	return string(content), nil
}
