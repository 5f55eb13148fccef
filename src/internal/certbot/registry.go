// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certbot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/execx"
)

// ErrToolUnavailable indicates the certbot binary is not installed.
// Callers degrade to a filesystem-only scan when they see it.
var ErrToolUnavailable = errors.New("certbot: tool unavailable")

// Entry is one certificate in the renewal registry.
type Entry struct {
	// Name is the registry's identifier for the certificate lineage.
	Name string
	// Domains lists the covered domains; the first is the primary.
	Domains []string
	// Expiry is the certificate's expiry timestamp.
	Expiry time.Time
}

// Line prefixes of the `certbot certificates` output the parser anchors on.
const (
	nameLinePrefix   = "Certificate Name:"
	domainLinePrefix = "Domains:"
	expiryLinePrefix = "Expiry Date:"
)

// expiryLayouts are tried in order against the expiry timestamp.
// Certbot prints a local timestamp with a numeric zone; older versions and
// hand-edited registries have been seen with the zone or the time missing.
var expiryLayouts = []string{
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseList parses the output of the certbot listing subcommand.
//
// The grammar is three anchored line patterns; see the package documentation.
// An entry is emitted once its name and a parsable expiry have both been
// seen. Entries with an unparsable expiry are discarded, and unrecognized
// lines are ignored, so annotations like "(VALID: 89 days)" and future
// output additions don't break the scan.
//
// Parameters:
//   - output: Raw combined output of the listing command
//
// Returns:
//   - []Entry: Structured registry entries, in output order
func ParseList(output []byte) []Entry {
	var (
		entries []Entry
		pending *Entry
	)

	flush := func() {
		if pending != nil && pending.Name != "" && !pending.Expiry.IsZero() {
			entries = append(entries, *pending)
		}
		pending = nil
	}

	for _, raw := range strings.Split(string(output), "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, nameLinePrefix):
			flush()
			pending = &Entry{Name: strings.TrimSpace(strings.TrimPrefix(line, nameLinePrefix))}

		case strings.HasPrefix(line, domainLinePrefix):
			if pending == nil {
				continue
			}
			pending.Domains = strings.Fields(strings.TrimPrefix(line, domainLinePrefix))

		case strings.HasPrefix(line, expiryLinePrefix):
			if pending == nil {
				continue
			}
			value := strings.TrimSpace(strings.TrimPrefix(line, expiryLinePrefix))
			expiry, ok := parseExpiry(value)
			if !ok {
				// Malformed entry; drop it rather than fail the scan.
				pending = nil
				continue
			}
			pending.Expiry = expiry
		}
	}
	flush()

	return entries
}

// parseExpiry parses the expiry value, tolerating trailing annotations.
func parseExpiry(value string) (time.Time, bool) {
	// Strip "(VALID: 89 days)" style annotations.
	if i := strings.Index(value, "("); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}

	for _, layout := range expiryLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Client queries the certbot registry through an execx.Runner.
type Client struct {
	// Bin is the certbot binary name or path.
	Bin string
	// Runner executes the listing subcommand.
	Runner execx.Runner
	// Timeout bounds the listing invocation.
	Timeout time.Duration
}

// NewClient creates a registry client for the given binary.
func NewClient(bin string, runner execx.Runner) *Client {
	return &Client{
		Bin:     bin,
		Runner:  runner,
		Timeout: 30 * time.Second,
	}
}

// List invokes `certbot certificates` and parses the result.
//
// Returns:
//   - []Entry: Parsed registry entries
//   - error: ErrToolUnavailable when certbot is missing, or execution errors
func (c *Client) List(ctx context.Context) ([]Entry, error) {
	if !c.Runner.LookPath(c.Bin) {
		return nil, ErrToolUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	res, err := c.Runner.Run(ctx, c.Bin, "certificates")
	if err != nil {
		if errors.Is(err, execx.ErrToolUnavailable) {
			return nil, ErrToolUnavailable
		}
		return nil, err
	}
	if res.ExitCode != 0 {
		// A present but misbehaving certbot degrades the same way as a
		// missing one; the filesystem pass still covers the live material.
		return nil, ErrToolUnavailable
	}

	return ParseList(res.Output), nil
}
