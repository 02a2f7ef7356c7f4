// Package rifme provides the rhyme lookup logic on top of the rifme.net client.
// It extracts rhyme words from fetched HTML pages and, when no syllable count
// is requested, fans a lookup out across the whole syllable range.
package rifme
