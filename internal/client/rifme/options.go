package rifme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PartOfSpeech identifies the grammatical category a rhyme must belong to.
// The numeric values are the codes the rifme.net service expects in its cookie.
type PartOfSpeech uint8

const (
	// PartOfSpeechOther covers everything outside the three main categories.
	// The service encodes it as an explicit zero rather than an absent cookie.
	PartOfSpeechOther PartOfSpeech = 0
	// PartOfSpeechNoun restricts results to nouns.
	PartOfSpeechNoun PartOfSpeech = 1
	// PartOfSpeechAdjective restricts results to adjectives.
	PartOfSpeechAdjective PartOfSpeech = 2
	// PartOfSpeechVerb restricts results to verbs.
	PartOfSpeechVerb PartOfSpeech = 3
)

const (
	// syllablesCookieName is the cookie the service reads the syllable-count filter from.
	syllablesCookieName = "slogovcookie"
	// partOfSpeechCookieName is the cookie the service reads the part-of-speech filter from.
	partOfSpeechCookieName = "chastcookie"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownPartOfSpeech indicates that the part-of-speech value is not recognized.
	ErrUnknownPartOfSpeech = errors.New("unknown part of speech")
)

// RequestOptions describes the filters applied to a single rhyme lookup.
// Nil fields mean the corresponding filter is absent. Values are passed
// through to the service as-is, without range validation.
type RequestOptions struct {
	// Syllables is the requested syllable count, or nil for any.
	Syllables *int
	// Part is the requested part of speech, or nil for all.
	Part *PartOfSpeech
	// Emphasis is the position of the stressed syllable counted from
	// the end of the word (0 = last syllable), or nil for any.
	Emphasis *int
}

// ParsePartOfSpeech parses a textual part-of-speech value into a PartOfSpeech.
// The comparison is case-insensitive and ignores surrounding whitespace.
func ParsePartOfSpeech(value string) (PartOfSpeech, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "noun":
		return PartOfSpeechNoun, nil
	case "adj":
		return PartOfSpeechAdjective, nil
	case "verb":
		return PartOfSpeechVerb, nil
	case "other":
		return PartOfSpeechOther, nil
	default:
		return PartOfSpeechOther, fmt.Errorf("%w: '%s'", ErrUnknownPartOfSpeech, value)
	}
}

// String returns the textual form accepted by ParsePartOfSpeech.
func (p PartOfSpeech) String() string {
	switch p {
	case PartOfSpeechNoun:
		return "noun"
	case PartOfSpeechAdjective:
		return "adj"
	case PartOfSpeechVerb:
		return "verb"
	default:
		return "other"
	}
}

// BuildCookie encodes the present filters as a Cookie header value.
// Present fields are emitted as "key=value;" pairs, syllables first,
// then part of speech. Absent fields are omitted entirely; when both
// are absent the result is an empty string. The emphasis filter is not
// a cookie, it travels in the URL path instead.
func BuildCookie(options *RequestOptions) string {
	if options == nil {
		return ""
	}

	var cookie strings.Builder

	if options.Syllables != nil {
		cookie.WriteString(syllablesCookieName)
		cookie.WriteString("=")
		cookie.WriteString(strconv.Itoa(*options.Syllables))
		cookie.WriteString(";")
	}

	if options.Part != nil {
		cookie.WriteString(partOfSpeechCookieName)
		cookie.WriteString("=")
		cookie.WriteString(strconv.Itoa(int(*options.Part)))
		cookie.WriteString(";")
	}

	return cookie.String()
}
