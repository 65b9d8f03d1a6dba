// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"
)

func TestNewToastUniqueIDs(t *testing.T) {
	a := NewToast("a", ToastKindStatus, time.Second)
	b := NewToast("b", ToastKindStatus, time.Second)

	if a.ID == 0 || b.ID == 0 {
		t.Error("Expected non-zero toast IDs")
	}
	if a.ID == b.ID {
		t.Errorf("Expected unique IDs, both are %d", a.ID)
	}
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		kind ToastKind
		want time.Duration
	}{
		{ToastKindStatus, DefaultToastDuration},
		{ToastKindSuccess, DefaultToastDuration},
		{ToastKindWarning, WarningToastDuration},
		{ToastKindError, ErrorToastDuration},
	}
	for _, tc := range tests {
		if got := DurationFor(tc.kind); got != tc.want {
			t.Errorf("DurationFor(%d) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestToastSlotLastWriteWins(t *testing.T) {
	var slot ToastSlot

	if slot.Visible() {
		t.Fatal("New slot should be empty")
	}

	if cmd := slot.Show("first", ToastKindSuccess, time.Second); cmd == nil {
		t.Fatal("Show() should return an expiry command")
	}
	first, _ := slot.Current()
	slot.Show("second", ToastKindSuccess, time.Second)
	second, _ := slot.Current()

	// The first toast's timer fires: the second toast stays.
	if slot.Expire(first.ID) {
		t.Error("Expire(first) should not hide a newer toast")
	}
	if got, ok := slot.Current(); !ok || got.Message != "second" {
		t.Errorf("Current() = %v, %v; want second", got, ok)
	}

	if !slot.Expire(second.ID) {
		t.Error("Expire(second) should hide the current toast")
	}
	if slot.Visible() {
		t.Error("Slot should be empty after expiry")
	}

	// Late duplicate expiry is harmless.
	if slot.Expire(second.ID) {
		t.Error("Expire on empty slot should report false")
	}
}

func TestToastSlotClear(t *testing.T) {
	var slot ToastSlot
	slot.Show("x", ToastKindStatus, time.Second)
	slot.Clear()
	if slot.Visible() {
		t.Error("Clear() should hide the toast")
	}
}

func TestToastManager(t *testing.T) {
	manager := NewToastManager()
	if manager.HasToasts() {
		t.Error("New manager should have no toasts")
	}

	manager.Add("one", ToastKindStatus)
	manager.Add("two", ToastKindWarning)
	manager.Add("three", ToastKindError)
	manager.Add("four", ToastKindSuccess)

	toasts := manager.Toasts()
	if len(toasts) != 3 {
		t.Fatalf("Expected 3 toasts (max), got %d", len(toasts))
	}
	if toasts[0].Message != "four" {
		t.Errorf("Newest toast should be first, got %q", toasts[0].Message)
	}

	if !manager.Expire(toasts[1].ID) {
		t.Error("Expire() should remove an existing toast")
	}
	if manager.Expire(toasts[1].ID) {
		t.Error("Expire() twice should report false")
	}
	if len(manager.Toasts()) != 2 {
		t.Errorf("Expected 2 toasts after expiry, got %d", len(manager.Toasts()))
	}
}

func TestRenderToast(t *testing.T) {
	out := RenderToast(NewToast("Unknown command", ToastKindError, time.Second), 80)
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("RenderToast() missing message: %q", out)
	}
	if !strings.Contains(out, "[X]") {
		t.Errorf("RenderToast() missing error indicator: %q", out)
	}
}

func TestRenderToastStackEmpty(t *testing.T) {
	if got := RenderToastStack(nil, 80); got != "" {
		t.Errorf("RenderToastStack(nil) = %q, want empty", got)
	}
}

func TestWrapToastText(t *testing.T) {
	got := wrapToastText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapToastText() = %q, want %q", got, want)
	}
}
