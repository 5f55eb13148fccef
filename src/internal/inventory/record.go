// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inventory

import (
	"fmt"
	"sort"
	"time"
)

// Status classifies a certificate by its expiry.
type Status string

const (
	// StatusValid marks certificates whose expiry is today or later.
	StatusValid Status = "VALID"
	// StatusExpired marks certificates that expired before today.
	StatusExpired Status = "EXPIRED"
)

// secondsPerDay is the day quantum for expiry arithmetic.
const secondsPerDay = 86400

// Record is one certificate in the inventory, an immutable snapshot taken
// during a scan.
type Record struct {
	// Name identifies the certificate lineage; unique within a scan.
	Name string `json:"name"`
	// Domain is the primary covered domain.
	Domain string `json:"domain"`
	// Expiry is the certificate's expiry timestamp.
	Expiry time.Time `json:"expiry"`
	// DaysLeft is whole days until expiry; negative once expired.
	DaysLeft int `json:"daysLeft"`
	// Status is EXPIRED exactly when DaysLeft is negative.
	Status Status `json:"status"`
	// Method describes how the certificate gets renewed.
	Method string `json:"renewalMethod"`
}

// DaysLeft computes whole days between now and expiry from the epoch-second
// delta, flooring toward negative infinity so that a certificate expired by
// any fraction of a day counts as at least one day expired.
func DaysLeft(expiry, now time.Time) int {
	delta := expiry.Unix() - now.Unix()
	days := delta / secondsPerDay
	if delta < 0 && delta%secondsPerDay != 0 {
		days--
	}
	return int(days)
}

// Classify computes DaysLeft and Status for the given expiry.
func Classify(expiry, now time.Time) (int, Status) {
	days := DaysLeft(expiry, now)
	if days < 0 {
		return days, StatusExpired
	}
	return days, StatusValid
}

// sortPadCeiling is the largest value a 10-digit zero-padded field can hold.
const sortPadCeiling = int64(9999999999)

// SortKey returns a string whose lexical order equals the display order:
// expired certificates first (most overdue first), then valid certificates
// by ascending days remaining.
//
// The key is a tier prefix ("0" expired, "1" valid) followed by a 10-digit
// zero-padded integer, so a plain string sort needs no custom comparator.
func (r Record) SortKey() string {
	if r.Status == StatusExpired {
		// DaysLeft is negative here; adding it to the ceiling orders the
		// most overdue records first.
		return fmt.Sprintf("0%010d", sortPadCeiling+int64(r.DaysLeft))
	}
	return fmt.Sprintf("1%010d", int64(r.DaysLeft))
}

// Sort orders records in place by SortKey, name as the tie-breaker so runs
// are deterministic.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		ki, kj := records[i].SortKey(), records[j].SortKey()
		if ki != kj {
			return ki < kj
		}
		return records[i].Name < records[j].Name
	})
}
