package chain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/exceptional/pkg/exceptional"
	"github.com/ib-77/exceptional/pkg/exceptional/attempt"
)

// TestURLProcessing runs the title-length flow over every URL without HTTP requests
func TestURLProcessing(t *testing.T) {
	t.Parallel()

	urls := []string{
		// valid by structure (never fetched)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		// invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processURLs(urls)

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, fmt.Sprintf("title length: %d", len("Mock Page Title for https://www.test.org")), results[1])
}

func TestURLProcessing_AttemptIgnoresFailures(t *testing.T) {
	t.Parallel()

	var seen []error
	a := attempt.With(exceptional.Of(func(err error) { seen = append(seen, err) }))

	n, ok := attempt.GetAsInt(a, func() (int, error) {
		return Start(processURL("invalid-url")).Result().Unwrap()
	})
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Len(t, seen, 1)
}

func processURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, url := range urls {
		out = append(out, Finally(Start(processURL(url)),
			func(r int) string { return fmt.Sprintf("title length: %d", r) },
			func(err error) string { return "invalid" },
			func() string { return "invalid" }))
	}
	return out
}

func processURL(url string) exceptional.ThrowsOr[int] {
	return Map(ThenTry(FromResult(func() (string, error) { return validateURLTest(url) }), mockFetchTitle),
		func(title string) int { return len(title) }).Result()
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(url string) (string, error) {
	if _, err := validateURLTest(url); err != nil {
		return "", err
	}
	return "Mock Page Title for " + url, nil
}

func validateURLTest(url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("URL must start with http:// or https://")
	}
	return url, nil
}
