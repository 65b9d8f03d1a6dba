// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before
// reloading.
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc receives the reloaded configuration, or the error that kept
// it from loading. It runs on the watcher goroutine.
type ReloadFunc func(cfg *Config, err error)

// Watch reloads path whenever it changes until ctx is done. The parent
// directory is watched rather than the file, so editors that save by
// rename and files created after startup are both seen.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	return WatchDebounced(ctx, path, DefaultDebounce, fn)
}

// WatchDebounced is Watch with an explicit debounce interval.
func WatchDebounced(ctx context.Context, path string, debounce time.Duration, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go watchLoop(ctx, watcher, abs, debounce, fn)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration, fn ReloadFunc) {
	defer watcher.Close()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("CONFIG: watcher stopped after panic: %v", r)
		}
	}()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			if _, err := os.Stat(path); os.IsNotExist(err) {
				log.Printf("CONFIG: %s removed, keeping current settings", path)
				continue
			}
			cfg, err := LoadFromPath(path)
			if err != nil {
				log.Printf("CONFIG: reload failed: %v", err)
			} else {
				log.Printf("CONFIG: reloaded %s", path)
			}
			fn(cfg, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("CONFIG: watcher error: %v", err)
		}
	}
}
