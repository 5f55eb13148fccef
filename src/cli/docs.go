// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS certificate renewal manager.
// It implements a Cobra-based CLI that scans the certbot registry and the live
// certificate directory, renders the inventory as a color-coded table or JSON,
// and drives the interactive renewal workflow. The package wires configuration,
// flag overrides, and the logger together; all heavy lifting lives in the
// internal packages.
package cli
