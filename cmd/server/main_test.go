package main

import "testing"

func TestMainSkipsWhenRequested(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	// main returns immediately instead of binding ports.
	main()
}
