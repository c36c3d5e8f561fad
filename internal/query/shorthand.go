package query

import (
	"context"
	"strings"
)

// ShellInterpreter handles the "$" prefix: everything after it is a
// literal shell command. A bare "$" yields a typing hint.
type ShellInterpreter struct{}

func (ShellInterpreter) Name() string { return "shell" }

func (ShellInterpreter) Interpret(_ context.Context, query string) ([]Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(trimmed, "$") {
		return nil, nil
	}
	cmd := strings.TrimSpace(trimmed[1:])
	if cmd == "" {
		return []Result{ShellCommandResult("Enter command...")}, nil
	}
	return []Result{ShellCommandResult(cmd)}, nil
}

// MentionInterpreter handles the "@" prefix: the remainder becomes a web
// search phrase. A bare "@" yields a typing hint.
type MentionInterpreter struct{}

func (MentionInterpreter) Name() string { return "mention" }

func (MentionInterpreter) Interpret(_ context.Context, query string) ([]Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(trimmed, "@") {
		return nil, nil
	}
	term := strings.TrimSpace(trimmed[1:])
	if term == "" {
		return []Result{ShellCommandResult("Search the web...")}, nil
	}
	return []Result{WebSearchResult(term)}, nil
}
