package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIDYLIST_LOG", "")
	t.Setenv("TIDYLIST_OVERWRITE", "")
	t.Setenv("TIDYLIST_VERBOSE", "")

	cfg := Load()
	if cfg.LogPath != "" {
		t.Errorf("LogPath = %q, want empty", cfg.LogPath)
	}
	if !cfg.Overwrite {
		t.Error("Overwrite should default to true")
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIDYLIST_LOG", "/tmp/tidylist.log")
	t.Setenv("TIDYLIST_OVERWRITE", "false")
	t.Setenv("TIDYLIST_VERBOSE", "true")

	cfg := Load()
	if cfg.LogPath != "/tmp/tidylist.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.Overwrite {
		t.Error("Overwrite should be false")
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("TIDYLIST_OVERWRITE", "not-a-bool")

	cfg := Load()
	if !cfg.Overwrite {
		t.Error("unparseable values should keep the default")
	}
}
