package main

import "testing"

// The interactive root runs its own UI and must not build the zap logger;
// every subcommand needs it.
func TestLoggerInitSkipsInteractiveRoot(t *testing.T) {
	logger = nil

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE(root) failed: %v", err)
	}
	if logger != nil {
		t.Fatal("root command must not initialize the logger")
	}

	if err := rootCmd.PersistentPreRunE(statusCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE(status) failed: %v", err)
	}
	if logger == nil {
		t.Fatal("subcommands must initialize the logger")
	}
	logger.Sync()
	logger = nil
}
