// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging abstractions for the TLS certificate renewal manager.
// It supports human-readable CLI output for interactive terminal sessions and
// structured JSON output for piped or scripted runs, behind a single Logger interface.
package logger
