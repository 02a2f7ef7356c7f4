// Package rifme provides a client for fetching rhyme pages from the rifme.net service.
// Request filters are carried to the service as cookies, so the client owns both
// the cookie encoding and the URL construction for rhyme lookups.
package rifme
