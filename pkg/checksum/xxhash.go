package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// GetFileChecksum hashes the whole file so both jobs can log which results file
// they worked on.
func GetFileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to copy file content to hasher for file %s: %w", filePath, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// CalculateHash fingerprints a list of fields. The separator is the ASCII unit
// separator so that commas and semicolons inside answers do not collide.
func CalculateHash(fields []string) string {
	digest := xxhash.New()
	digest.WriteString(strings.Join(fields, "\x1f"))

	return hex.EncodeToString(digest.Sum(nil))
}
