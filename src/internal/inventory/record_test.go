// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/inventory"
)

func TestDaysLeft(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{
			name:   "ten full days ahead",
			expiry: now.Add(10 * 24 * time.Hour),
			want:   10,
		},
		{
			name:   "under one day ahead truncates to zero",
			expiry: now.Add(23 * time.Hour),
			want:   0,
		},
		{
			name:   "exactly now",
			expiry: now,
			want:   0,
		},
		{
			name:   "one hour past floors to minus one",
			expiry: now.Add(-time.Hour),
			want:   -1,
		},
		{
			name:   "exactly one day past",
			expiry: now.Add(-24 * time.Hour),
			want:   -1,
		},
		{
			name:   "five days and change past",
			expiry: now.Add(-5*24*time.Hour - time.Minute),
			want:   -6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.DaysLeft(tt.expiry, now))
		})
	}
}

func TestClassifyBoundary(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// Zero days left is still VALID; EXPIRED begins strictly below zero.
	days, status := inventory.Classify(now.Add(time.Hour), now)
	assert.Equal(t, 0, days)
	assert.Equal(t, inventory.StatusValid, status)

	days, status = inventory.Classify(now.Add(-time.Second), now)
	assert.Equal(t, -1, days)
	assert.Equal(t, inventory.StatusExpired, status)
}

func TestSortKeyOrdering(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	daysSpread := []int{400, -1, 10, -5, 0}
	var records []inventory.Record
	for _, d := range daysSpread {
		expiry := now.Add(time.Duration(d) * 24 * time.Hour)
		days, status := inventory.Classify(expiry, now)
		records = append(records, inventory.Record{
			Name:     "cert",
			Expiry:   expiry,
			DaysLeft: days,
			Status:   status,
		})
	}

	inventory.Sort(records)

	var got []int
	for _, r := range records {
		got = append(got, r.DaysLeft)
	}
	assert.Equal(t, []int{-5, -1, 0, 10, 400}, got)
}

func TestSortKeyMonotonic(t *testing.T) {
	// All expired records sort before all valid ones regardless of magnitude,
	// and within the expired tier more overdue sorts first.
	severe := inventory.Record{DaysLeft: -900, Status: inventory.StatusExpired}
	mild := inventory.Record{DaysLeft: -1, Status: inventory.StatusExpired}
	soon := inventory.Record{DaysLeft: 1, Status: inventory.StatusValid}
	far := inventory.Record{DaysLeft: 3650, Status: inventory.StatusValid}

	assert.Less(t, severe.SortKey(), mild.SortKey())
	assert.Less(t, mild.SortKey(), soon.SortKey())
	assert.Less(t, soon.SortKey(), far.SortKey())

	// Fixed-width key: lexical order must equal numeric order.
	assert.Len(t, severe.SortKey(), 11)
	assert.Len(t, far.SortKey(), 11)
}

func TestSortTieBreaksOnName(t *testing.T) {
	records := []inventory.Record{
		{Name: "zeta.example.com", DaysLeft: 30, Status: inventory.StatusValid},
		{Name: "alpha.example.com", DaysLeft: 30, Status: inventory.StatusValid},
	}

	inventory.Sort(records)

	assert.Equal(t, "alpha.example.com", records[0].Name)
	assert.Equal(t, "zeta.example.com", records[1].Name)
}
