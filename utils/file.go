package utils

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines 读取文件的所有行
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	lines := make([]string, 0, 64)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return lines, nil
}

// WriteLines 把lines逐行写入path
func WriteLines(path string, lines []string) error {
	create, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer create.Close()
	for _, line := range lines {
		if _, err = create.WriteString(line + "\n"); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}
