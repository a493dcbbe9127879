package directory

import (
	"testing"

	"github.com/harperreed/photodir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoKey(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"Smith, Alice.jpg", "Smith, Alice"},
		{"Smith, Alice_2.jpg", "Smith, Alice"},
		{"Smith, Alice_crop.large.png", "Smith, Alice"},
		{"Smith, Alice", "Smith, Alice"},
		{" Jones, Bob .jpeg", "Jones, Bob"},
		{".hidden", ""},
	}

	for _, tt := range tests {
		if got := PhotoKey(tt.filename); got != tt.expected {
			t.Errorf("PhotoKey(%q) = %q, want %q", tt.filename, got, tt.expected)
		}
	}
}

func TestGroupPhotosKeepsListingOrder(t *testing.T) {
	files := []models.PhotoCandidate{
		{Name: "Smith, Alice.jpg", URL: "a1", Size: 1},
		{Name: "Jones, Bob.jpg", URL: "b1", Size: 1},
		{Name: "Smith, Alice_2.jpg", URL: "a2", Size: 2},
		{Name: ".DS_Store", URL: "junk", Size: 9},
	}

	grouped := GroupPhotos(files)
	require.Len(t, grouped, 2)
	assert.Equal(t, []string{"a1", "a2"}, []string{grouped["Smith, Alice"][0].URL, grouped["Smith, Alice"][1].URL})
	assert.Len(t, grouped["Jones, Bob"], 1)
}

func TestSelectPhotoLargest(t *testing.T) {
	url, ok := SelectPhoto([]models.PhotoCandidate{
		{URL: "small", Size: 10},
		{URL: "big", Size: 900},
		{URL: "mid", Size: 300},
	}, "placeholder")

	assert.True(t, ok)
	assert.Equal(t, "big", url)
}

func TestSelectPhotoTieIsDeterministic(t *testing.T) {
	candidates := []models.PhotoCandidate{
		{URL: "urlA", Size: 100},
		{URL: "urlB", Size: 250},
		{URL: "urlC", Size: 250},
	}

	first, ok := SelectPhoto(candidates, "placeholder")
	require.True(t, ok)
	assert.NotEqual(t, "urlA", first)
	assert.Contains(t, []string{"urlB", "urlC"}, first)

	for i := 0; i < 20; i++ {
		again, _ := SelectPhoto(candidates, "placeholder")
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "urlC", first)
}

func TestSelectPhotoEmptyUsesPlaceholder(t *testing.T) {
	url, ok := SelectPhoto(nil, "placeholder")
	assert.False(t, ok)
	assert.Equal(t, "placeholder", url)
}
