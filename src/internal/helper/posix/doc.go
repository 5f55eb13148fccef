// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides small POSIX-ish helpers for CLI ergonomics,
// such as deriving a clean executable name for usage strings.
package posix
