// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the renewal manager's configuration.
// Configuration is optional: with no file present the defaults match a
// stock certbot install on Linux. A file can be supplied through the
// CERT_MANAGER_CONFIG_FILE environment variable in JSON or YAML, detected
// by extension.
package config
