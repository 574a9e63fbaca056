// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-service-template/models"
	"github.com/stretchr/testify/assert"
)

func TestRangeStart(t *testing.T) {
	now := time.Date(2026, time.March, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		key    string
		want   time.Time
		wantOK bool
	}{
		{key: "today", want: time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC), wantOK: true},
		{key: "past_7_days", want: time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), wantOK: true},
		{key: "this_month", want: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{key: "this_year", want: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{key: ""},
		{key: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := rangeStart(tt.key, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestApplyDateFilter(t *testing.T) {
	since := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	var filter models.ExampleFilter
	applyDateFilter(&filter, "created_at", since)
	assert.Equal(t, since, filter.CreatedSince)
	assert.True(t, filter.UpdatedSince.IsZero())

	applyDateFilter(&filter, "updated_at", since)
	assert.Equal(t, since, filter.UpdatedSince)

	applyDateFilter(&filter, "unknown", time.Time{})
	assert.Equal(t, since, filter.CreatedSince)
}

func TestFieldValue(t *testing.T) {
	created := time.Date(2026, time.February, 3, 4, 5, 6, 0, time.UTC)
	example := models.Example{ID: 7, Name: "Item", Description: "text", IsActive: true, CreatedAt: created}

	assert.Equal(t, "7", fieldValue(example, "id"))
	assert.Equal(t, "Item", fieldValue(example, "name"))
	assert.Equal(t, "text", fieldValue(example, "description"))
	assert.Equal(t, "Yes", fieldValue(example, "is_active"))
	assert.Equal(t, "Feb. 3, 2026, 04:05:06", fieldValue(example, "created_at"))
	assert.Equal(t, "-", fieldValue(example, "updated_at"))
	assert.Equal(t, "", fieldValue(example, "nope"))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "ID", fieldLabel("id"))
	assert.Equal(t, "Name", fieldLabel("name"))
	assert.Equal(t, "Created at", fieldLabel("created_at"))
	assert.Equal(t, "", fieldLabel(""))
}

func TestExampleAdminRegistration(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "created_at", "updated_at"}, ExampleAdmin.ListDisplay)
	assert.Equal(t, []string{"created_at", "updated_at"}, ExampleAdmin.ListFilter)
	assert.Equal(t, []string{"name", "description"}, ExampleAdmin.SearchFields)
	assert.Equal(t, []string{"created_at", "updated_at"}, ExampleAdmin.ReadonlyFields)
	assert.Equal(t, "Example Item", ExampleAdmin.VerboseName)
	assert.Equal(t, "Example Items", ExampleAdmin.VerboseNamePlural)
}
