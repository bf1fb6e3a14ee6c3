// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// Watch monitors the config file and calls onChange with each reload
// that parses and validates. Invalid or unreadable versions are logged
// and skipped; the previous configuration stays in effect. The watcher
// stops when ctx is cancelled.
//
// The inotify watch is placed on the parent directory rather than the
// file itself: editors that save by writing a temp file and renaming
// it create a new inode, and a file-level watch on the old inode
// misses the replacement. Directory events are filtered by filename,
// so the file does not need to exist yet when the watch starts.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	directory := filepath.Dir(absolutePath)
	filename := filepath.Base(absolutePath)

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return fmt.Errorf("inotify init: %w", err)
	}

	if _, err := unix.InotifyAddWatch(fd, directory, unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return fmt.Errorf("watching %s: %w", directory, err)
	}

	go watchLoop(ctx, fd, absolutePath, filename, onChange)
	return nil
}

// watchLoop polls the inotify fd, reloads the file on events that
// match the target name, and delivers valid configurations to
// onChange.
//
// Poll runs with a 100ms timeout so context cancellation is noticed
// promptly. After a matching event, a 50ms debounce plus a drain
// coalesces editor write bursts into one reload.
func watchLoop(ctx context.Context, fd int, path, filename string, onChange func(*Config)) {
	defer unix.Close(fd)

	buffer := make([]byte, 4096)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			slog.Warn("config watch stopped", "path", path, "error", err)
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			slog.Warn("config watch stopped", "path", path, "error", err)
			return
		}

		if !eventMatchesFile(buffer[:bytesRead], filename) {
			continue
		}

		time.Sleep(50 * time.Millisecond)
		drainEvents(fd, buffer)

		cfg, err := LoadFile(path)
		if err != nil {
			// Mid-write, briefly absent during an atomic replace, or
			// a genuine syntax error. Either way the running
			// configuration stays in effect.
			slog.Warn("config reload skipped", "path", path, "error", err)
			continue
		}
		if err := cfg.Validate(); err != nil {
			slog.Warn("config reload skipped", "path", path, "error", err)
			continue
		}

		onChange(cfg)
	}
}

// eventMatchesFile reports whether any inotify event in the buffer
// names the target file. Layout from inotify(7):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, null-padded to alignment
//	};
func eventMatchesFile(buffer []byte, filename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			nameBytes := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminatedString(nameBytes) == filename {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

// nullTerminatedString cuts a null-padded byte slice at the first
// null byte.
func nullTerminatedString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// drainEvents reads and discards pending inotify events after the
// debounce sleep, coalescing rapid writes into a single reload.
func drainEvents(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			return
		}
	}
}
