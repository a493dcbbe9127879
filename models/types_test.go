// ABOUTME: Tests for photo directory data models
// ABOUTME: Validates identity keys and the ordered Directory semantics
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactKey(t *testing.T) {
	tests := []struct {
		last, first string
		expected    string
	}{
		{"Smith", "Alice", "Smith, Alice"},
		{" Smith ", "Alice ", "Smith, Alice"},
		{"", "", ", "},
	}

	for _, tt := range tests {
		c := ContactRecord{LastName: tt.last, FirstName: tt.first}
		if got := c.Key(); got != tt.expected {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.last, tt.first, got, tt.expected)
		}
	}
}

func TestDirectoryPreservesInsertionOrder(t *testing.T) {
	dir := NewDirectory()
	dir.Set(ContactRecord{LastName: "Zed", FirstName: "A"})
	dir.Set(ContactRecord{LastName: "Able", FirstName: "B"})
	dir.Set(ContactRecord{LastName: "Moss", FirstName: "C"})

	assert.Equal(t, []string{"Zed, A", "Able, B", "Moss, C"}, dir.Keys())
	assert.Equal(t, 3, dir.Len())
}

func TestDirectoryDuplicateKeepsPositionLastWriteWins(t *testing.T) {
	dir := NewDirectory()
	require.False(t, dir.Set(ContactRecord{LastName: "Smith", FirstName: "Al", Team: "Ops"}))
	require.False(t, dir.Set(ContactRecord{LastName: "Jones", FirstName: "Bo", Team: "Ops"}))
	require.True(t, dir.Set(ContactRecord{LastName: "Smith", FirstName: "Al", Team: "Admin"}))

	records := dir.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Smith, Al", records[0].Key())
	assert.Equal(t, "Admin", records[0].Team)

	got, ok := dir.Get("Smith, Al")
	require.True(t, ok)
	assert.Equal(t, "Admin", got.Team)
}

func TestDirectoryKeysIsACopy(t *testing.T) {
	dir := NewDirectory()
	dir.Set(ContactRecord{LastName: "Smith", FirstName: "Al"})

	keys := dir.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"Smith, Al"}, dir.Keys())
}
