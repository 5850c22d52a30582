package tui

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/config"
	"github.com/thenoetrevino/pipeline/internal/testutil"
)

// Terminal size used by the tests: wide enough for all four columns
const (
	testWidth  = 200
	testHeight = 40
)

// setupTestModel creates a sized model over the seed board
func setupTestModel(t *testing.T) Model {
	t.Helper()
	m := InitialModel(context.Background(), testutil.NewSeededApp(t), config.Default())
	m, _ = send(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

// send runs one message through Update and unwraps the model
func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// press sends a sequence of keys. Single characters are sent as text keys,
// anything else is looked up in specialKeys.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(m, keyMsg(t, k))
	}
	return m
}

var specialKeys = map[string]tea.Key{
	"enter":     {Code: tea.KeyEnter},
	"esc":       {Code: tea.KeyEscape},
	"left":      {Code: tea.KeyLeft},
	"right":     {Code: tea.KeyRight},
	"up":        {Code: tea.KeyUp},
	"down":      {Code: tea.KeyDown},
	"backspace": {Code: tea.KeyBackspace},
	"tab":       {Code: tea.KeyTab},
	"ctrl+s":    {Code: 's', Mod: tea.ModCtrl},
	"ctrl+c":    {Code: 'c', Mod: tea.ModCtrl},
}

func keyMsg(t *testing.T, k string) tea.KeyPressMsg {
	t.Helper()
	if key, ok := specialKeys[k]; ok {
		return tea.KeyPressMsg(key)
	}
	if utf8.RuneCountInString(k) != 1 {
		t.Fatalf("unknown test key %q", k)
	}
	r, _ := utf8.DecodeRuneInString(k)
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

// typeText sends every rune of s as a text key
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(m, tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
	return m
}

// cmdTimeout bounds how long a single command may run. Ticking commands
// such as cursor blinks never finish in time and are dropped.
const cmdTimeout = 20 * time.Millisecond

// runCmds executes cmd and feeds every message it produces back into the
// model, following batches and the commands returned along the way
func runCmds(m Model, cmd tea.Cmd, depth int) Model {
	if cmd == nil || depth > 16 {
		return m
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return m
	}

	switch msg := msg.(type) {
	case nil, tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = runCmds(m, c, depth+1)
		}
		return m
	}

	m, next := send(m, msg)
	return runCmds(m, next, depth+1)
}

// pressAndRun is press for a single key, also running the returned commands
func pressAndRun(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, cmd := send(m, keyMsg(t, k))
	return runCmds(m, cmd, 0)
}

// typeAndRun is typeText, also running the returned commands
func typeAndRun(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = send(m, tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
		m = runCmds(m, cmd, 0)
	}
	return m
}
