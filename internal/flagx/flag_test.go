package flagx

import (
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-t"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-e", "-a", ":9000"},
			allowedFlags: []string{"-e", "-a"},
			want:         []string{"-e", "-a", ":9000"},
		},
		{
			name:         "equals value starting with dash",
			args:         []string{"--config=--weird.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--weird.json"},
		},
		{
			name:         "server and client flags mixed",
			args:         []string{"-a", ":50051", "-u", "dummy", "-t", "10", "register"},
			allowedFlags: []string{"-a", "-t"},
			want:         []string{"-a", ":50051", "-t", "10"},
		},
		{
			name:         "subcommand positional is not a value of unknown flag",
			args:         []string{"-x", "login"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json", "-a", ":1"}))
	assert.Equal(t, "/path/eq.json", ConfigPath([]string{"-config=/path/eq.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1", "-y", "2"}))
	assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/etc/zkpauth.json"}
	assert.Equal(t, "/etc/zkpauth.json", JsonConfigFlags())
}

func TestSecondsVar(t *testing.T) {
	d := 10 * time.Second

	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	SecondsVar(fs, &d, "t", "ttl in seconds")

	assert.Equal(t, "10", fs.Lookup("t").DefValue)

	require.NoError(t, fs.Parse([]string{"-t", "42"}))
	assert.Equal(t, 42*time.Second, d)

	fs = flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	SecondsVar(fs, &d, "t", "ttl in seconds")
	assert.Error(t, fs.Parse([]string{"-t", "1.5"}))
	assert.Equal(t, 42*time.Second, d)
}
