package rifme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractRhymes tests the extractRhymes function.
func TestExtractRhymes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          string
		expected      []string
		expectedError error
	}{
		{
			name: "three items in document order",
			page: `<html><body><ul>
				<li class="riLi" data-w="а"></li>
				<li class="riLi" data-w="б"></li>
				<li class="riLi" data-w="в"></li>
			</ul></body></html>`,
			expected: []string{"а", "б", "в"},
		},
		{
			name:     "no matching items",
			page:     `<html><body><ul><li class="other" data-w="а"></li></ul></body></html>`,
			expected: []string{},
		},
		{
			name:     "empty document",
			page:     "",
			expected: []string{},
		},
		{
			name: "item without word attribute fails the whole extraction",
			page: `<html><body><ul>
				<li class="riLi" data-w="а"></li>
				<li class="riLi"></li>
				<li class="riLi" data-w="в"></li>
			</ul></body></html>`,
			expectedError: ErrMissingWordAttribute,
		},
		{
			name: "items with extra classes are not rhyme items",
			page: `<html><body><ul>
				<li class="riLi" data-w="а"></li>
				<li class="riLi highlighted" data-w="б"></li>
			</ul></body></html>`,
			expected: []string{"а"},
		},
		{
			name:     "non-list elements with the class are ignored",
			page:     `<html><body><div class="riLi" data-w="а"></div></body></html>`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rhymes, err := extractRhymes(tt.page)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rhymes)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, rhymes)
		})
	}
}
