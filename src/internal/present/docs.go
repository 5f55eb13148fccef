// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package present renders the certificate inventory for humans and machines.
// The table view is fixed-width with per-column truncation and a single
// highlight per row: expired certificates in red, certificates inside the
// warning window in yellow. Color is a configuration decision made once at
// startup, never inferred mid-render. The JSON view carries the full
// untruncated records for scripted consumers.
package present
