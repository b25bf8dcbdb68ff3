package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Each store keeps its full record set in one JSON array file. The file is
// read once when the store is opened and rewritten in full after every
// mutation, before the mutating call returns.

func readSnapshot[T any](filename string) ([]T, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", filename, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", filename, err)
	}
	return records, nil
}

func writeSnapshot[T any](filename string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", filename, err)
	}
	return nil
}

// sortedIDs returns the map keys in ascending order, which doubles as the
// serialization order of every snapshot.
func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
