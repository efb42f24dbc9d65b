package keymap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Record is the persisted form of one shortcut customization.
type Record struct {
	Chord        string `mapstructure:"key_chord"`
	Action       string `mapstructure:"action"`
	Description  string `mapstructure:"description"`
	Context      string `mapstructure:"context"`
	Qualifier    string `mapstructure:"qualifier"`
	Enabled      *bool  `mapstructure:"enabled"`
	Priority     int    `mapstructure:"priority"`
	ShowInFooter bool   `mapstructure:"show_in_footer"`
	Category     string `mapstructure:"category"`
}

// LoadRecords reads customization records from a document at path. A missing
// file is not an error; it yields no records.
func LoadRecords(path string) ([]Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read keymap file: %w", err)
	}
	var records []Record
	if err := v.UnmarshalKey("bindings", &records); err != nil {
		return nil, fmt.Errorf("unmarshal keymap bindings: %w", err)
	}
	return records, nil
}

// Apply overlays records onto the registry. Records load after built-ins, so
// a record sharing a chord with a built-in replaces it; within the slice,
// later records replace earlier ones. Records with an unknown context are
// skipped.
func (r *Registry) Apply(records []Record) {
	for _, rec := range records {
		scope, ok := ParseScope(rec.Context)
		if !ok {
			continue
		}
		enabled := true
		if rec.Enabled != nil {
			enabled = *rec.Enabled
		}
		r.Add(Binding{
			Chord:        rec.Chord,
			Action:       Action(rec.Action),
			Description:  rec.Description,
			Scope:        scope,
			Qualifier:    rec.Qualifier,
			Enabled:      enabled,
			Priority:     rec.Priority,
			Category:     rec.Category,
			ShowInFooter: rec.ShowInFooter,
		})
	}
}

// SaveRecords writes the registry's bindings to a document at path, creating
// the parent directory if needed.
func SaveRecords(path string, reg *Registry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir keymap dir: %w", err)
	}
	records := make([]map[string]any, 0, reg.Len())
	for _, b := range reg.All() {
		enabled := b.Enabled
		records = append(records, map[string]any{
			"key_chord":      b.Chord,
			"action":         string(b.Action),
			"description":    b.Description,
			"context":        b.Scope.String(),
			"qualifier":      b.Qualifier,
			"enabled":        enabled,
			"priority":       b.Priority,
			"show_in_footer": b.ShowInFooter,
			"category":       b.Category,
		})
	}
	v := viper.New()
	v.Set("bindings", records)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write keymap file: %w", err)
	}
	return nil
}
