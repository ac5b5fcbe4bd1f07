package symbol

import (
	"testing"

	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare ticker gets default suffix",
			raw:      "reliance",
			expected: "RELIANCE.NS",
		},
		{
			name:     "existing suffix preserved",
			raw:      " tcs.bo ",
			expected: "TCS.BO",
		},
		{
			name:     "already canonical",
			raw:      "INFY.NS",
			expected: "INFY.NS",
		},
		{
			name:     "mixed case with default suffix",
			raw:      "Infy",
			expected: "INFY.NS",
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolved, err := Resolve(testCase.raw)
			if testCase.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.SymbolInvalidError)))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, resolved)
		})
	}
}

func TestSuffixes(t *testing.T) {
	suffixes := Suffixes()
	assert.Equal(t, []string{".NS", ".BO"}, suffixes)

	// mutating the returned slice must not affect resolution
	suffixes[0] = ".XX"
	resolved, err := Resolve("reliance.ns")
	assert.NoError(t, err)
	assert.Equal(t, "RELIANCE.NS", resolved)
}
