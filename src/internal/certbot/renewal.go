// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certbot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Renewal method labels shown in the inventory table.
const (
	MethodManualOther = "Manual/Other"
	MethodUnknown     = "Unknown"
)

// authenticatorLabels maps certbot authenticator values to display labels.
var authenticatorLabels = map[string]string{
	"webroot":    "Webroot",
	"nginx":      "Nginx plugin",
	"apache":     "Apache plugin",
	"standalone": "Standalone",
	"manual":     "DNS challenge (manual)",
}

// MethodResolver resolves how a named certificate gets renewed.
//
// Resolution is a pure lookup: it inspects the renewal configuration
// directory and the live material directory and always produces a label,
// never an error.
type MethodResolver struct {
	// RenewalDir holds per-certificate renewal configuration (<name>.conf).
	RenewalDir string
	// LiveDir holds live certificate material (<name>/cert.pem).
	LiveDir string
}

// Resolve maps a certificate name to a human-readable renewal method label.
//
// A renewal configuration file wins: its authenticator value is mapped
// through the known labels, dns-* plugins get a DNS challenge label carrying
// the plugin name, and anything else falls to an Unknown bucket that carries
// the raw value. Without a configuration file, live material on disk means
// the certificate is managed by hand ("Manual/Other"); with neither, the
// method is simply "Unknown".
func (r *MethodResolver) Resolve(name string) string {
	data, err := os.ReadFile(filepath.Join(r.RenewalDir, name+".conf"))
	if err == nil {
		auth := ParseRenewalConf(data)["authenticator"]
		return labelForAuthenticator(auth)
	}

	if _, err := os.Stat(filepath.Join(r.LiveDir, name)); err == nil {
		return MethodManualOther
	}

	return MethodUnknown
}

// labelForAuthenticator maps an authenticator value to its display label.
func labelForAuthenticator(auth string) string {
	auth = strings.ToLower(strings.TrimSpace(auth))
	if auth == "" {
		return MethodUnknown
	}
	if label, ok := authenticatorLabels[auth]; ok {
		return label
	}
	if strings.HasPrefix(auth, "dns-") {
		return fmt.Sprintf("DNS challenge (%s)", auth)
	}
	return fmt.Sprintf("Unknown (%s)", auth)
}

// ParseRenewalConf parses a certbot renewal configuration file.
//
// The format is INI-like: key = value pairs, # comments, and [section]
// headers. Sections are flattened since certbot never reuses a key across
// sections that this tool reads.
//
// Parameters:
//   - data: Raw file contents
//
// Returns:
//   - map[string]string: Lower-cased keys to trimmed values
func ParseRenewalConf(data []byte) map[string]string {
	values := make(map[string]string)

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return values
}
