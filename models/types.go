// ABOUTME: Data models for the photo directory
// ABOUTME: Defines ContactRecord, PhotoCandidate, DisplayGroup, and the ordered Directory
package models

import "strings"

// GroupSize is the number of contact slots in one table row.
const GroupSize = 3

type PhotoCandidate struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type ContactRecord struct {
	LastName  string            `json:"last_name"`
	FirstName string            `json:"first_name"`
	Team      string            `json:"team"`
	Role      string            `json:"role,omitempty"`
	Emails    []string          `json:"emails,omitempty"`
	Skype     string            `json:"skype,omitempty"`
	Phones    []string          `json:"phones,omitempty"`
	Photos    []PhotoCandidate  `json:"photos,omitempty"`
	PhotoURL  string            `json:"photo_url"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// Key returns the identity key of the contact, "<last>, <first>".
func (c ContactRecord) Key() string {
	return FullNameKey(c.LastName, c.FirstName)
}

// FullNameKey builds the identity key shared by contacts and photo filenames.
func FullNameKey(last, first string) string {
	return strings.TrimSpace(last) + ", " + strings.TrimSpace(first)
}

type DisplayGroup struct {
	Team    string          `json:"team"`
	Members []ContactRecord `json:"members"`
}

// Directory is a keyed set of contacts that remembers first-insertion order.
// Re-setting an existing key replaces the record but keeps its position.
type Directory struct {
	keys    []string
	records map[string]ContactRecord
}

func NewDirectory() *Directory {
	return &Directory{records: make(map[string]ContactRecord)}
}

// Set stores the record under its key and reports whether the key was already present.
func (d *Directory) Set(c ContactRecord) bool {
	key := c.Key()
	_, exists := d.records[key]
	if !exists {
		d.keys = append(d.keys, key)
	}
	d.records[key] = c
	return exists
}

func (d *Directory) Get(key string) (ContactRecord, bool) {
	c, ok := d.records[key]
	return c, ok
}

func (d *Directory) Len() int {
	return len(d.keys)
}

// Keys returns the keys in first-insertion order.
func (d *Directory) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Records returns the contacts in first-insertion order.
func (d *Directory) Records() []ContactRecord {
	out := make([]ContactRecord, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.records[k])
	}
	return out
}
