// Package loader implements the external collaborator contracts of
// spec.md §4.F: reading program text and tag files from storage, and
// serializing the tag store back out. Grounded on the teacher's
// loader.Load (elf.go) — read file, build structured result, wrap errors
// with %w — with the ELF format itself replaced by line-oriented text.
package loader

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-plc/scanengine/ladder"
)

// LoadProgram reads a ladder program from path, one rung per line in
// source order, and tokenizes it (spec.md §6). Lines not beginning with a
// decimal digit are comments/blanks and are skipped.
func LoadProgram(path string) (ladder.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return ladder.Program{}, fmt.Errorf("opening program file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ladder.Program{}, fmt.Errorf("reading program file %s: %w", path, err)
	}

	return ladder.TokenizeProgram(lines), nil
}
