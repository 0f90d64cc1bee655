// Package batch runs one handler per matching file in a folder and keeps score.
package batch

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/common"
)

// Filter selects input files by name prefix and extension. An empty Prefix matches
// every name; Ext is compared case-insensitively and without the dot.
type Filter struct {
	Prefix string
	Ext    string
}

func (f Filter) Match(name string) bool {
	if !strings.HasPrefix(name, f.Prefix) {
		return false
	}
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return false
	}
	return constants.NormalizeExt(name[dot:]) == constants.NormalizeExt(f.Ext)
}

// Scan lists the regular files directly under dir that pass the filter, sorted by name.
func Scan(dir string, f Filter) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("directory is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, common.WrapError(err, "read dir")
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !f.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
