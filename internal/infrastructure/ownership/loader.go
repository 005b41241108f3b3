package ownership

import (
	"fmt"
	"os"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	domain "github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
)

type fileRecord struct {
	Owner         string   `json:"owner"`
	Championships []string `json:"championships"`
}

// LoadRegistry builds the registry from path, or from SeedRecords when path is empty.
// The file shape is {"green": {"1": {"owner": "...", "championships": ["2019", ""]}}, "white": {...}}.
func LoadRegistry(path string) (*domain.Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.NewRegistry(SeedRecords()), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ownership registry %s: %w", path, err)
	}

	records, err := ParseRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("parse ownership registry %s: %w", path, err)
	}

	return domain.NewRegistry(records), nil
}

func ParseRecords(raw []byte) (map[division.Division]map[string]domain.Record, error) {
	var decoded map[string]map[string]fileRecord
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	out := make(map[division.Division]map[string]domain.Record, len(decoded))
	for key, teams := range decoded {
		div, err := division.Parse(key)
		if err != nil {
			return nil, err
		}
		records := make(map[string]domain.Record, len(teams))
		for teamID, item := range teams {
			records[teamID] = domain.Record{
				Owner:         item.Owner,
				Championships: item.Championships,
			}
		}
		out[div] = records
	}

	return out, nil
}
