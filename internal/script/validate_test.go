package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		script   *Script
		errors   []string
		warnings []string
		infos    []string
	}{
		{
			name:   "valid",
			script: &Script{Version: "1", Add: StringOrArray{"new"}, Rename: []RenameRule{{Old: "a", New: "b"}}},
		},
		{
			name:   "nil",
			errors: []string{"script_is_nil"},
		},
		{
			name:   "empty",
			script: &Script{Version: "1"},
			infos:  []string{"empty_script"},
		},
		{
			name:   "unknown version",
			script: &Script{Version: "2", Add: StringOrArray{"new"}},
			errors: []string{"unsupported_version"},
		},
		{
			name:   "empty entry",
			script: &Script{Version: "1", Remove: StringOrArray{"missing", " "}},
			errors: []string{"empty_entry"},
		},
		{
			name:     "add and remove",
			script:   &Script{Version: "1", Add: StringOrArray{"x"}, Remove: StringOrArray{"x"}},
			warnings: []string{"add_and_remove"},
		},
		{
			name: "rename rules",
			script: &Script{Version: "1", Rename: []RenameRule{
				{Old: "a", New: ""},
				{Old: "b*", New: "c"},
				{Old: "d", New: "e"},
				{Old: "d", New: "f"},
				{Old: "g", New: "e"},
			}},
			errors: []string{"incomplete_rename", "wildcard_rename", "duplicate_rename", "duplicate_rename"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.script)
			require.NotNil(t, diags)

			var errs, warns, infos []string
			for _, d := range diags.Errors {
				errs = append(errs, d.Code)
			}

			for _, d := range diags.Warnings {
				warns = append(warns, d.Code)
			}

			for _, d := range diags.Infos {
				infos = append(infos, d.Code)
			}

			assert.Equal(t, tt.errors, errs)
			assert.Equal(t, tt.warnings, warns)
			assert.Equal(t, tt.infos, infos)
			assert.Equal(t, len(tt.errors) == 0, diags.IsValid())
		})
	}
}
