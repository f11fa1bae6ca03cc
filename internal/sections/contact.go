package sections

import (
	"regexp"

	"github.com/lachho/resume/internal/types"
)

// Phone numbers are Australian mobile or landline numbers, with or without the +61 prefix.
var (
	emailPattern = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b(?:\+?61|0)[2-47-8](?:[ -]?[0-9]){8}\b`)
	urlPattern   = regexp.MustCompile(`\b(?:https?://)?(?:www\.)?(?:[a-zA-Z0-9-]+\.)+(?:com|org|net|dev|io|app|ai|me|xyz|au|ca|uk|nz)\b[-a-zA-Z0-9()@:%_+.~#?&/=]*`)
)

// ExtractContactInfo finds the first email address, the first phone number and every distinct URL in text.
// Domains that belong to an email address are not reported as URLs.
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{URLs: []string{}}

	if email := emailPattern.FindString(text); email != "" {
		info.Email = &email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		info.Phone = &phone
	}

	seen := make(map[string]struct{})
	for _, url := range findURLs(text) {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		info.URLs = append(info.URLs, url)
	}
	return info
}

// findURLs scans text for URL candidates, rejecting any that start right after an '@'
func findURLs(text string) []string {
	var urls []string
	for pos := 0; pos < len(text); {
		loc := urlPattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		// the slice start always looks like a word boundary to the matcher
		if start == pos && !isBoundary(text, start) {
			pos = start + 1
			continue
		}
		if start > 0 && text[start-1] == '@' {
			pos = start + 1
			continue
		}

		urls = append(urls, text[start:end])
		pos = end
	}
	return urls
}

func isBoundary(s string, i int) bool {
	before := i > 0 && isWordByte(s[i-1])
	after := i < len(s) && isWordByte(s[i])
	return before != after
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
