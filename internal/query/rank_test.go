package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/inventory"
)

func testInventory() []inventory.Entry {
	return []inventory.Entry{
		{Name: "Calculator", ID: "calculator", Exec: "gnome-calculator"},
		{Name: "Files", ID: "files", Exec: "nautilus"},
		{Name: "Firefox", ID: "firefox", Exec: "firefox %u"},
		{Name: "Terminal", ID: "terminal", Exec: "gnome-terminal"},
		{Name: "Text Editor", ID: "text-editor", Exec: "gnome-text-editor"},
	}
}

func TestRankInterpreterNameMatch(t *testing.T) {
	in := NewRankInterpreter(testInventory(), 8)

	results, err := in.Interpret(context.Background(), "fire")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	top := results[0]
	require.Equal(t, KindApp, top.Kind)
	assert.Equal(t, "Firefox", top.App.Name)
	assert.Equal(t, []int{0, 1, 2, 3}, top.App.MatchSpan,
		"matched characters are recorded for highlighting")
}

func TestRankInterpreterNameBeatsCommand(t *testing.T) {
	entries := []inventory.Entry{
		{Name: "Image Viewer", ID: "viewer", Exec: "gthumb"},
		{Name: "Thumb", ID: "thumb", Exec: "some-binary"},
	}
	in := NewRankInterpreter(entries, 8)

	results, err := in.Interpret(context.Background(), "thumb")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Thumb", results[0].App.Name,
		"a name match outranks a command-line match")
	assert.Equal(t, "Image Viewer", results[1].App.Name)
	assert.Nil(t, results[1].App.MatchSpan, "command matches carry no name span")
}

func TestRankInterpreterNameMatchKeepsSpan(t *testing.T) {
	// The name matches only as a sparse subsequence while the command
	// line matches exactly. The command score must not displace the
	// name match or its recorded indices.
	entries := []inventory.Entry{
		{Name: "z e d i t o r x", ID: "zed", Exec: "editor"},
	}
	in := NewRankInterpreter(entries, 8)

	results, err := in.Interpret(context.Background(), "editor")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].App.MatchSpan,
		"a name match always keeps its highlight span")
}

func TestRankInterpreterLimit(t *testing.T) {
	var entries []inventory.Entry
	for i := 0; i < 20; i++ {
		entries = append(entries, inventory.Entry{
			Name: fmt.Sprintf("Editor %02d", i),
			ID:   fmt.Sprintf("editor-%02d", i),
			Exec: "editor",
		})
	}
	in := NewRankInterpreter(entries, 8)

	results, err := in.Interpret(context.Background(), "editor")
	require.NoError(t, err)
	assert.Len(t, results, 8)
}

func TestRankInterpreterStableTies(t *testing.T) {
	in := NewRankInterpreter(testInventory(), 8)

	first, err := in.Interpret(context.Background(), "e")
	require.NoError(t, err)
	second, err := in.Interpret(context.Background(), "e")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].App.Name, second[i].App.Name,
			"equal scores keep inventory order across runs")
	}
}

func TestRankInterpreterDeclines(t *testing.T) {
	in := NewRankInterpreter(testInventory(), 8)

	results, err := in.Interpret(context.Background(), "zzzzzz")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestRankInterpreterEmptyInventory(t *testing.T) {
	in := NewRankInterpreter(nil, 8)

	results, err := in.Interpret(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Empty(t, results)
}
