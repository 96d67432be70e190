package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testEventID = "aaaaaaa1-0000-4000-8000-000000000003"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"City Tap Jazz Brunch", "city-tap-jazz-brunch"},
		{"city-tap", "city-tap"},
		{"  ", ""},
		{"", ""},
		{"--Hello,   World!!--", "hello-world"},
		{"Café & Bar 2025", "caf-bar-2025"},
		{"a---b", "a-b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestBuildSlug(t *testing.T) {
	assert.Equal(t, "city-tap-jazz-brunch--"+testEventID, BuildSlug(testEventID, "City Tap Jazz Brunch", nil))
	assert.Equal(t, "jazz-brunch-special--"+testEventID, BuildSlug(testEventID, "City Tap Jazz Brunch", strPtr("jazz-brunch-special")))
	assert.Equal(t, "city-tap-jazz-brunch--"+testEventID, BuildSlug(testEventID, "City Tap Jazz Brunch", strPtr("  ")))
	assert.Equal(t, "--"+testEventID, BuildSlug(testEventID, "!!!", nil))
}

func TestExtractIDFromSlug(t *testing.T) {
	tests := []struct {
		name   string
		slug   string
		wantID string
		wantOK bool
	}{
		{"canonical", "city-tap-jazz-brunch--" + testEventID, testEventID, true},
		{"empty prefix", "--" + testEventID, testEventID, true},
		{"upper case id", "jazz--AAAAAAA1-0000-4000-8000-000000000003", testEventID, true},
		{"id only without separator", testEventID, "", false},
		{"single hyphen", "jazz-" + testEventID, "", false},
		{"bad version nibble", "jazz--aaaaaaa1-0000-6000-8000-000000000003", "", false},
		{"bad variant nibble", "jazz--aaaaaaa1-0000-4000-c000-000000000003", "", false},
		{"trailing junk", "jazz--" + testEventID + "-x", "", false},
		{"no id", "city-tap-jazz-brunch", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractIDFromSlug(tt.slug)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestBuildSlug_ExtractsBack(t *testing.T) {
	for i := 0; i < 50; i++ {
		id := uuid.NewString()
		id2, ok := ExtractIDFromSlug(BuildSlug(id, "Quiz Night #"+id[:4], nil))
		assert.True(t, ok)
		assert.Equal(t, id, id2)
	}
}
