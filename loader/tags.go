package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-plc/scanengine/tagstore"
)

// LoadTags reads a tag file from path: one "NAME TYPE LITERAL" line per
// tag, TYPE one of int/bool/real, order insignificant (spec.md §4.F, §6).
func LoadTags(path string) (*tagstore.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tag file %s: %w", path, err)
	}
	defer f.Close()

	store := tagstore.New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("tag file %s line %d: want 3 fields, got %d", path, lineNo, len(fields))
		}
		name, kind, literal := fields[0], fields[1], fields[2]

		value, err := parseLiteral(kind, literal)
		if err != nil {
			return nil, fmt.Errorf("tag file %s line %d (%s): %w", path, lineNo, name, err)
		}
		if err := store.Set(name, value); err != nil {
			return nil, fmt.Errorf("tag file %s line %d (%s): %w", path, lineNo, name, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tag file %s: %w", path, err)
	}

	return store, nil
}

func parseLiteral(kind, literal string) (tagstore.Value, error) {
	switch kind {
	case "bool":
		b := literal == "1" || literal == "true"
		if !b && literal != "0" && literal != "false" {
			return tagstore.Value{}, fmt.Errorf("invalid bool literal %q", literal)
		}
		return tagstore.Bool(b), nil
	case "int":
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return tagstore.Value{}, fmt.Errorf("invalid int literal %q: %w", literal, err)
		}
		return tagstore.Int(n), nil
	case "real":
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return tagstore.Value{}, fmt.Errorf("invalid real literal %q: %w", literal, err)
		}
		return tagstore.Real(f), nil
	default:
		return tagstore.Value{}, fmt.Errorf("unknown tag type %q", kind)
	}
}

// SaveTags writes one "NAME TYPE LITERAL" line per tag in store to w.
// Iteration order (and therefore line order) is unspecified (spec.md
// §4.F: the serialization format is unspecified at this layer beyond the
// NAME TYPE LITERAL shape).
func SaveTags(w io.Writer, store *tagstore.Store) error {
	var writeErr error
	store.Iter(func(name string, v tagstore.Value) {
		if writeErr != nil {
			return
		}
		var kind, literal string
		switch v.Kind {
		case tagstore.KindBool:
			kind = "bool"
			literal = "0"
			if v.B {
				literal = "1"
			}
		case tagstore.KindInt:
			kind = "int"
			literal = strconv.FormatInt(v.I, 10)
		case tagstore.KindReal:
			kind = "real"
			literal = strconv.FormatFloat(v.R, 'f', -1, 64)
		}
		_, writeErr = fmt.Fprintf(w, "%s %s %s\n", name, kind, literal)
	})
	return writeErr
}

// SaveTagsToFile is a convenience wrapper over SaveTags that creates (or
// truncates) the file at path.
func SaveTagsToFile(path string, store *tagstore.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tag file %s: %w", path, err)
	}
	defer f.Close()

	return SaveTags(f, store)
}
