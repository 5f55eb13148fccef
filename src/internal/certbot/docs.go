// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certbot integrates with the certbot renewal registry.
// It invokes the listing subcommand and parses its line-oriented output into
// structured entries, and reads per-certificate renewal configuration files
// to resolve how each certificate gets renewed.
//
// The parsers are deliberately small and explicit: three anchored line
// patterns for the registry listing, and key=value pairs for renewal
// configuration. Everything downstream works with the structured results and
// never sees certbot's exact output format.
package certbot
