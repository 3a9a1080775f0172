package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/natefinch/atomic"

	"github.com/daskie/qc-hash-go"
)

// dumpSession atomically writes every key/value pair in m to path as a
// JSON object. atomic.WriteFile writes to a temp file and renames it into
// place, so a crash or concurrent reader never observes a half-written
// dump.
func dumpSession(path string, m *flathash.Map[string, string]) error {
	snapshot := make(map[string]string, m.Len())
	m.Each(func(k, v string) { snapshot[k] = v })

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write session dump: %w", err)
	}
	return nil
}
