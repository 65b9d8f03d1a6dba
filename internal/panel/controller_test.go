// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/mdcheat/internal/host"
	"github.com/jeranaias/mdcheat/internal/host/hosttest"
)

type stubDoc struct{ id int }

func (d *stubDoc) Init() tea.Cmd                           { return nil }
func (d *stubDoc) Update(tea.Msg) (host.Document, tea.Cmd) { return d, nil }
func (d *stubDoc) View() string                            { return "" }
func (d *stubDoc) SetSize(int, int)                        {}

func newTestController(opts ...Option) (*Controller, *hosttest.Panels, *int) {
	panels := hosttest.NewPanels()
	renders := 0
	c := New(panels, func() host.Document {
		renders++
		return &stubDoc{id: renders}
	}, opts...)
	return c, panels, &renders
}

// =============================================================================
// SHOW TESTS
// =============================================================================

func TestShowCreatesOnce(t *testing.T) {
	c, panels, renders := newTestController()
	require.Equal(t, StateAbsent, c.State())

	for i := 0; i < 5; i++ {
		c.Show()
	}

	require.Len(t, panels.Created, 1)
	assert.Equal(t, 1, *renders)
	assert.Equal(t, 1, panels.Contents)
	assert.Len(t, panels.Reveals, 4)
	assert.Equal(t, StateShown, c.State())

	p := panels.Created[0]
	assert.Equal(t, ViewType, p.ViewType)
	assert.Equal(t, Title, p.Title)
	assert.Equal(t, host.PlacementBeside, p.Placement)
	assert.True(t, p.Options.EnableScripts)
	assert.True(t, p.Options.RetainContextWhenHidden)
	for _, h := range panels.Reveals {
		assert.Equal(t, p.Handle, h)
	}
}

func TestShowAfterDisposeCreatesFreshPanel(t *testing.T) {
	c, panels, renders := newTestController()

	c.Show()
	first := c.Handle()
	panels.Dispose(first)

	assert.Equal(t, StateAbsent, c.State())
	assert.Equal(t, host.Handle(""), c.Handle())
	assert.Zero(t, panels.Listeners(), "dispose subscription must be released")

	c.Show()
	require.Len(t, panels.Created, 2)
	assert.NotEqual(t, first, c.Handle())
	assert.Equal(t, 2, *renders)
	assert.Empty(t, panels.Reveals)
	assert.Len(t, panels.Live(), 1)
}

func TestCyclesNeverLeakListeners(t *testing.T) {
	c, panels, _ := newTestController()

	for i := 0; i < 10; i++ {
		c.Show()
		c.Show()
		assert.Equal(t, 1, panels.Listeners())
		panels.Dispose(c.Handle())
		assert.Zero(t, panels.Listeners())
	}
	assert.Len(t, panels.Created, 10)
	assert.Empty(t, panels.Live())
}

func TestStaleDisposeDoesNotClearNewPanel(t *testing.T) {
	c, panels, _ := newTestController()

	c.Show()
	old := c.Handle()
	panels.Dispose(old)
	c.Show()
	current := c.Handle()

	// A late duplicate notification for the old panel.
	panels.Fire(old)

	assert.Equal(t, StateShown, c.State())
	assert.Equal(t, current, c.Handle())
}

func TestWithPlacement(t *testing.T) {
	c, panels, _ := newTestController(WithPlacement(host.PlacementActive))
	c.Show()
	assert.Equal(t, host.PlacementActive, panels.Created[0].Placement)

	c.SetPlacement(host.PlacementBeside)
	c.Show()
	assert.Equal(t, host.PlacementBeside, panels.Created[0].Placement, "reveal moves the panel")
}

// =============================================================================
// DISPOSE TESTS
// =============================================================================

func TestControllerDispose(t *testing.T) {
	c, panels, _ := newTestController()

	c.Dispose() // no-op when absent
	assert.Empty(t, panels.Created)

	c.Show()
	c.Dispose()

	assert.Equal(t, StateAbsent, c.State())
	assert.Empty(t, panels.Live())
	assert.Zero(t, panels.Listeners())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAbsent, "ABSENT"},
		{StateShown, "SHOWN"},
		{State(7), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}
