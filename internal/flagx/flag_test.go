package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
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
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash-starting token is not a value",
			args:         []string{"-s", "-t", "10"},
			allowedFlags: []string{"-s", "-t"},
			want:         []string{"-s", "-t", "10"},
		},
		{
			name:         "multiple allowed flags keep order",
			args:         []string{"-a", ":5008", "-c", "conf.json", "--other", "x"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-a", ":5008", "-c", "conf.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	assert.Equal(t, "a.json", JSONConfigPath([]string{"-a", ":1", "-c", "a.json"}))
	assert.Equal(t, "b.json", JSONConfigPath([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", JSONConfigPath([]string{"-config=c.json", "-s", "x"}))
	assert.Equal(t, "", JSONConfigPath([]string{"-s", "secret"}))
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-c", "server.json"}
	assert.Equal(t, "server.json", JsonConfigFlags())
}
