// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package host

// Disposable releases a registration.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a function to Disposable.
type DisposableFunc func()

// Dispose calls f.
func (f DisposableFunc) Dispose() {
	if f != nil {
		f()
	}
}

// Once wraps fn so that only the first Dispose call runs it.
func Once(fn func()) Disposable {
	done := false
	return DisposableFunc(func() {
		if done {
			return
		}
		done = true
		fn()
	})
}

// ExtensionContext is handed to an extension on activation.
type ExtensionContext struct {
	Clipboard Clipboard
	Panels    PanelService
	// Placement is where the extension should open new panels.
	Placement Placement

	Subscriptions []Disposable
}

// Push records registrations to release on deactivation.
func (c *ExtensionContext) Push(ds ...Disposable) {
	c.Subscriptions = append(c.Subscriptions, ds...)
}

// DisposeAll releases all subscriptions, newest first.
func (c *ExtensionContext) DisposeAll() {
	for len(c.Subscriptions) > 0 {
		last := len(c.Subscriptions) - 1
		d := c.Subscriptions[last]
		c.Subscriptions = c.Subscriptions[:last]
		if d != nil {
			d.Dispose()
		}
	}
}
