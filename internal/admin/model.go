// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-service-template/models"
)

// ModelAdmin describes how a resource is shown in the admin.
type ModelAdmin struct {
	// Slug is the URL segment of the resource under MountPath.
	Slug string

	VerboseName       string
	VerboseNamePlural string

	// ListDisplay are the columns of the list page. The first one links to
	// the change page.
	ListDisplay []string

	// ListFilter are the date fields offered as sidebar filters.
	ListFilter []string

	// SearchFields are matched by the search box.
	SearchFields []string

	// ReadonlyFields are shown, but not editable, on the change page.
	ReadonlyFields []string

	// ListPerPage caps the rows of the list page.
	ListPerPage uint64
}

// ExampleAdmin registers the example resource.
var ExampleAdmin = ModelAdmin{
	Slug:              "examples",
	VerboseName:       models.Example{}.VerboseName(),
	VerboseNamePlural: models.Example{}.VerboseNamePlural(),
	ListDisplay:       []string{"id", "name", "created_at", "updated_at"},
	ListFilter:        []string{"created_at", "updated_at"},
	SearchFields:      []string{"name", "description"},
	ReadonlyFields:    []string{"created_at", "updated_at"},
	ListPerPage:       100,
}

// dateRange is one option of a date filter.
type dateRange struct {
	Key   string
	Label string
}

var dateRanges = []dateRange{
	{Key: "", Label: "Any date"},
	{Key: "today", Label: "Today"},
	{Key: "past_7_days", Label: "Past 7 days"},
	{Key: "this_month", Label: "This month"},
	{Key: "this_year", Label: "This year"},
}

// rangeStart returns the first instant covered by the date range key,
// computed in now's location. ok is false for unknown keys and "".
func rangeStart(key string, now time.Time) (start time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch key {
	case "today":
		return today, true
	case "past_7_days":
		return today.AddDate(0, 0, -7), true
	case "this_month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case "this_year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// applyDateFilter sets the filter bound matching field.
func applyDateFilter(filter *models.ExampleFilter, field string, since time.Time) {
	switch field {
	case "created_at":
		filter.CreatedSince = since
	case "updated_at":
		filter.UpdatedSince = since
	}
}

// fieldValue renders one field of example for display.
func fieldValue(example models.Example, field string) string {
	switch field {
	case "id":
		return strconv.FormatInt(example.ID, 10)
	case "name":
		return example.Name
	case "description":
		return example.Description
	case "is_active":
		if example.IsActive {
			return "Yes"
		}
		return "No"
	case "created_at":
		return formatTime(example.CreatedAt)
	case "updated_at":
		return formatTime(example.UpdatedAt)
	default:
		return ""
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("Jan. 2, 2006, 15:04:05")
}

// fieldLabel turns "created_at" into "Created at" and "id" into "ID".
func fieldLabel(field string) string {
	if field == "id" {
		return "ID"
	}
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
