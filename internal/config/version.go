package config

// Version is set at build time:
//
//	go build -ldflags="-X github.com/bethropolis/exclude-copy/internal/config.Version=1.2.0"
var Version = "dev"
