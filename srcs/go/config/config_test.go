package config

import (
	"os"
	"testing"
)

func Test_Load_default(t *testing.T) {
	for _, k := range ConfigEnvKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel != "INFO" || c.ShowTimestamp {
		t.Errorf("unexpected default config %+v", c)
	}
}

func Test_Load(t *testing.T) {
	t.Setenv(LogLevelEnvKey, "debug")
	t.Setenv(ShowTimestampEnvKey, "true")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel != "debug" || !c.ShowTimestamp {
		t.Errorf("unexpected config %+v", c)
	}
}

func Test_Load_invalid(t *testing.T) {
	t.Setenv(ShowTimestampEnvKey, "sometimes")
	if _, err := Load(); err == nil {
		t.Errorf("expect error for %s=sometimes", ShowTimestampEnvKey)
	}
}
