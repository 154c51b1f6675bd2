package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:8000", "-c", "conf.json"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8000"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", "x"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag at end without value",
			args:    []string{"-d"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "next arg is a flag",
			args:    []string{"-d", "-i", "5"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "equals value that looks like a flag",
			args:    []string{"-env=-weird.env"},
			allowed: []string{"-env"},
			want:    []string{"-env=-weird.env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-a", "http://x", "-c", "short.json"}
	assert.Equal(t, "short.json", ConfigFileFlag())

	os.Args = []string{"bin", "-config=long.json"}
	assert.Equal(t, "long.json", ConfigFileFlag())

	os.Args = []string{"bin", "-a", "http://x"}
	assert.Empty(t, ConfigFileFlag())
}

func TestEnvFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-e", "dev.env", "-c", "conf.json"}
	assert.Equal(t, "dev.env", EnvFileFlag())

	os.Args = []string{"bin", "--env", "prod.env"}
	assert.Equal(t, "prod.env", EnvFileFlag())
}
