package common

import (
	"bufio"
	"os"
	"strings"
)

// ReadAllLines reads all lines from the given path on disk.
func ReadAllLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ReadAllText reads the whole file as text, with line endings normalized to "\n" and trailing whitespace removed.
func ReadAllText(path string) (string, error) {
	lines, err := ReadAllLines(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
