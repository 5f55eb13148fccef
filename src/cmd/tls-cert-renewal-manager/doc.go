// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-cert-renewal-manager is a command-line tool for inspecting managed
// TLS certificates and driving an interactive renewal workflow.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-renewal-manager/cmd/tls-cert-renewal-manager@latest
//
// # Usage
//
//	tls-cert-renewal-manager [FLAGS]
//
// # Flags
//
//	    --no-color     Disable color output
//	    --json         Print the inventory as JSON and exit
//	    --list-only    Print the inventory and skip the renewal workflow
//	    --email        Email for the renewal command (skips the prompt)
//	    --cert-dir     Live certificate directory (default: /etc/letsencrypt/live)
//	    --renewal-dir  Renewal configuration directory (default: /etc/letsencrypt/renewal)
//	    --certbot      Certbot binary name or path
//	    --timeout      Renewal command timeout (default: 15m)
//
// # Environment
//
//	CERTBOT_EMAIL             Default email for renewal commands
//	NO_COLOR                  Disable color output when set
//	CERT_MANAGER_CONFIG_FILE  Path to a JSON or YAML configuration file
//
// # Examples
//
// Inspect the inventory without renewing anything:
//
//	tls-cert-renewal-manager --list-only
//
// Produce JSON output for scripting:
//
//	tls-cert-renewal-manager --json > inventory.json
//
// Renew a certificate against a custom live directory:
//
//	tls-cert-renewal-manager --cert-dir /srv/tls/live --email ops@example.com
package main
