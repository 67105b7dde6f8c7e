package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	type want struct {
		databaseDSN string
		shouldError bool
	}

	tests := []struct {
		name    string
		envVars map[string]string
		flags   []string
		want    want
	}{
		{
			name:    "missing DSN is an error",
			envVars: map[string]string{},
			flags:   []string{},
			want: want{
				shouldError: true,
			},
		},
		{
			name: "environment variable only",
			envVars: map[string]string{
				"DATABASE_URL": "links.db",
			},
			flags: []string{},
			want: want{
				databaseDSN: "links.db",
			},
		},
		{
			name:    "flag only",
			envVars: map[string]string{},
			flags:   []string{"-d", "postgres://localhost:5432/links"},
			want: want{
				databaseDSN: "postgres://localhost:5432/links",
			},
		},
		{
			name: "environment variable overrides flag",
			envVars: map[string]string{
				"DATABASE_URL": "env.db",
			},
			flags: []string{"-d", "flag.db"},
			want: want{
				databaseDSN: "env.db",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := ParseFlags()

			if tt.want.shouldError {
				require.Error(t, err, "expected error but got none")
				assert.Contains(t, err.Error(), "cannot be empty")
			} else {
				require.NoError(t, err, "unexpected error")
				assert.Equal(t, tt.want.databaseDSN, cfg.DatabaseDSN)
			}
		})
	}
}
