package surfstats

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Discover returns every .csv file under root in lexical walk order.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover exports under %s: %w", root, err)
	}
	return files, nil
}
