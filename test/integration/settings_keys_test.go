package integration_test

import (
	"strings"
	"testing"

	"github.com/imagecheck/qcreview/test/integration/harness"
)

func TestSettingsKeysList(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "next")
				harness.AssertStdoutContains(t, result, "right, tab")
				harness.AssertStdoutContains(t, result, "quit")
				harness.AssertStdoutContains(t, result, "ctrl+s")
			},
		},
		{
			name: "list shows custom key when configured",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "next", "n")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				for _, line := range strings.Split(result.Stdout, "\n") {
					fields := strings.Fields(line)
					if len(fields) > 0 && fields[0] == "next" {
						if fields[len(fields)-1] != "n" {
							t.Errorf("Expected custom binding n, got line %q", line)
						}
						return
					}
				}
				t.Error("Expected a 'next' row")
			},
		},
		{
			name: "list JSON format with custom keys",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "help", "f1")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var keys map[string]map[string][]string
				harness.DecodeJSON(t, result, &keys)

				help, ok := keys["help"]
				if !ok {
					t.Fatal("Expected 'help' key in output")
				}
				if len(help["custom"]) != 1 || help["custom"][0] != "f1" {
					t.Errorf("Expected custom to be [f1], got %v", help["custom"])
				}
				if _, hasCustom := keys["next"]["custom"]; hasCustom {
					t.Error("Expected 'next' to have no custom binding")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "set valid key",
			args:         []string{"settings", "keys", "set", "next", "n"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'next' to: n")
			},
		},
		{
			name:         "set multiple keys with comma",
			args:         []string{"settings", "keys", "set", "previous", "left,p"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'previous' to: left, p")
			},
		},
		{
			name:         "set invalid key name",
			args:         []string{"settings", "keys", "set", "archive", "a"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown key")
			},
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "next", "n")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "set", "previous", "n"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name:         "set empty value fails",
			args:         []string{"settings", "keys", "set", "next", ""},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "cannot be empty")
			},
		},
		{
			name:         "shadowing an option shortcut warns",
			args:         []string{"settings", "keys", "set", "next", "R"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Warning: 'R' now hides the Right option shortcut")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsKeysUnset(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "keys", "unset", "next")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "has no custom binding")

	result = harness.RunCommand(t, env, "settings", "keys", "set", "next", "n")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "settings", "keys", "unset", "next")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Restored default for 'next': right, tab")

	result = harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, `"custom"`)
}
