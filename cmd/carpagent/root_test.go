package main

import "testing"

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd == nil {
		t.Fatal("newRootCmd() returned nil")
	}

	if cmd.Name() != "carpagent" {
		t.Errorf("expected name 'carpagent', got '%s'", cmd.Name())
	}

	for _, flag := range []string{"config", "debug"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag %s not registered", flag)
		}
	}
}
