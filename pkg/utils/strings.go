package utils

import "strings"

// RemoveEmptyStrings trims every element and drops the blank ones.
func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitList splits a comma separated setting into its non-blank parts.
func SplitList(value string) []string {
	return RemoveEmptyStrings(strings.Split(value, ","))
}
