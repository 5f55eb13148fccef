// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package services detects and reloads the web servers that consume renewed
// certificates. Detection queries systemd, falling back to the legacy
// service command on systems without it. Reloads try the graceful path
// first and fall back to a full restart; failures are reported per service
// and never abort the remaining candidates.
package services
