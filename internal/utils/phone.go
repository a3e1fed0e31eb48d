package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// vnPhonePattern matches Vietnamese mobile numbers in international form:
// +84 followed by a mobile prefix (3, 5, 7, 8, 9) and eight digits.
var vnPhonePattern = regexp.MustCompile(`^(\+84)(3|5|7|8|9)[0-9]{8}$`)

// NormalizePhone validates a phone number and returns its canonical +84 form.
// A leading 0 is rewritten to the country code; spaces and dashes are dropped.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, " ", "")
	stripped = strings.ReplaceAll(stripped, "-", "")

	if strings.HasPrefix(stripped, "0") {
		stripped = "+84" + stripped[1:]
	} else if strings.HasPrefix(stripped, "84") {
		stripped = "+" + stripped
	}

	if !vnPhonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	return stripped, nil
}

// MaskPhone hides all but the last three digits for log output.
func MaskPhone(phone string) string {
	if len(phone) <= 3 {
		return phone
	}
	return strings.Repeat("*", len(phone)-3) + phone[len(phone)-3:]
}
