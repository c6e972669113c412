package policy

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// appendStatus appends the given lines to the file at path, creating it if
// absent. The dump is an observability sink; callers treat failures as
// best-effort.
func appendStatus(path string, lines ...string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err = f.WriteString(sb.String())
	return err
}

// recencyLine formats a recency ordering as "k1,k2,...,kn,".
func recencyLine(keys []uint64) string {
	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(strconv.FormatUint(key, 10))
		sb.WriteByte(',')
	}
	return sb.String()
}

// bucketLine formats one frequency bucket as "c: k1, k2, ..., kn, ".
func bucketLine(count uint64, keys []uint64) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(count, 10))
	sb.WriteString(": ")
	for _, key := range keys {
		sb.WriteString(strconv.FormatUint(key, 10))
		sb.WriteString(", ")
	}
	return sb.String()
}

func sortUint64(s []uint64) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
