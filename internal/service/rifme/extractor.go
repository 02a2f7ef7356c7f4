package rifme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// rhymeItemSelector matches the list items carrying rhyme suggestions.
	// The attribute-equality form mirrors the service's markup, where the
	// rhyme items carry exactly this class and nothing else.
	rhymeItemSelector = `li[class=riLi]`

	// rhymeWordAttribute is the data attribute holding the rhyme word itself.
	rhymeWordAttribute = "data-w"
)

// Static error definitions for better error handling.
var (
	// ErrMissingWordAttribute indicates that a matched rhyme item has no word attribute.
	ErrMissingWordAttribute = errors.New("rhyme list item is missing the word attribute")
)

// extractRhymes parses a rhyme page and returns the rhyme words in document order.
// A page without any rhyme items yields an empty slice, not an error.
// A matched item without the word attribute fails the whole extraction,
// even if its siblings are well-formed.
func extractRhymes(page string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(rhymeItemSelector)
	rhymes := make([]string, 0, selection.Length())

	var extractionErr error

	selection.EachWithBreak(func(index int, item *goquery.Selection) bool {
		word, ok := item.Attr(rhymeWordAttribute)
		if !ok {
			extractionErr = fmt.Errorf("%w: item %d", ErrMissingWordAttribute, index)

			return false
		}

		rhymes = append(rhymes, word)

		return true
	})

	if extractionErr != nil {
		return nil, extractionErr
	}

	return rhymes, nil
}
