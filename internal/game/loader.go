package game

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-match/internal/board"

	"github.com/charmbracelet/x/ansi"
)

var ErrSymbolTooWide = errors.New("symbol does not fit on a card")

// LoadSymbols reads a symbol pool from a list of paths (files or directories).
// Every non-empty line that does not start with '#' is one symbol, at most
// CardInnerWidth terminal cells wide.
func LoadSymbols(paths []string) ([]string, error) {
	var symbols []string
	seen := map[string]string{}

	add := func(path string) error {
		syms, err := loadFile(path)
		if err != nil {
			return err
		}
		for _, sym := range syms {
			if w := ansi.StringWidth(sym); w > CardInnerWidth {
				return fmt.Errorf("%w: %q in %s is %d cells wide, max %d", ErrSymbolTooWide, sym, path, w, CardInnerWidth)
			}
			if prev, ok := seen[sym]; ok {
				return fmt.Errorf("%w: %q in %s (first seen in %s)", board.ErrDuplicateSymbol, sym, path, prev)
			}
			seen[sym] = path
			symbols = append(symbols, sym)
		}
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range files {
				if !entry.IsDir() {
					if err := add(filepath.Join(path, entry.Name())); err != nil {
						return nil, err
					}
				}
			}
		} else {
			if err := add(path); err != nil {
				return nil, err
			}
		}
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols found in %s", strings.Join(paths, ", "))
	}

	return symbols, nil
}

func loadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var symbols []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		symbols = append(symbols, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	return symbols, nil
}
