// Package app provides the main application logic for fetching rhyme suggestions.
// It initializes the necessary components, such as the rifme client and the
// rhyme lookup service, and prints the fetched rhymes to standard output.
package app
