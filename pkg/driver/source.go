package driver

import (
	"fmt"
	"os"
)

func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("driver: open %s: %w", path, err)
	}
	return f, nil
}
