package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/stencil/internal/cli"
	"github.com/jacksmith/stencil/internal/kvstore"
	"github.com/jacksmith/stencil/internal/repo"
)

// dataDir resolves the directory holding .stencil/ and the user
// config: --dir, then $STENCIL_HOME, then the home directory.
func dataDir() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	if dir := os.Getenv("STENCIL_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return home, nil
}

// openRepo opens the store, loads config and the story collection.
func openRepo() (*repo.Repository, *kvstore.Config, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}

	store, err := kvstore.Open(dir)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := kvstore.LoadConfig(dir)
	if err != nil {
		return nil, nil, err
	}
	cli.ApplyColorMode(cfg.Color)

	r := repo.New(store, cfg.TTLDays)
	if err := r.Load(); err != nil {
		return nil, nil, err
	}
	return r, cfg, nil
}

// parseStoryIndex converts a user-facing 1-based index argument to a
// 0-based collection index, validated against the current size.
func parseStoryIndex(arg string, r *repo.Repository) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &cli.ValidationError{Field: "story index", Message: fmt.Sprintf("%q is not a number", arg)}
	}
	if n < 1 || n > r.Len() {
		return 0, &cli.NotFoundError{Index: n, Count: r.Len()}
	}
	return n - 1, nil
}

// parseAssignments parses repeated name=value flags into a map.
// The value may contain '='; only the first one splits.
func parseAssignments(flag string, pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, &cli.ValidationError{Field: flag, Message: fmt.Sprintf("%q is not name=value", pair)}
		}
		values[name] = value
	}
	return values, nil
}

// confirm asks a yes/no question on the terminal. Anything other
// than y/yes declines.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
