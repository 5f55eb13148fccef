// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package inventory builds the in-memory certificate inventory.
// A scan enumerates the certbot renewal registry and the live-certificate
// directory, normalizes both into immutable records, deduplicates by name
// with the registry taking precedence, and classifies each record by
// days-until-expiry. Records live only for the duration of a run; the
// registry remains the source of truth.
package inventory
