// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package renew drives the interactive renewal workflow.
// It is a single-pass, linear state machine: select a certificate, resolve
// the notification email and domain form, build the certbot argument vector,
// confirm, execute, and offer to reload the web servers that consume the
// renewed certificate. No state re-enters the listing; declining at any
// point is a valid terminal outcome, not an error.
package renew
