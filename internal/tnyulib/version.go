package tnyulib

// Version is overridden at build time with
// -ldflags "-X github.com/techatnyu/tnyu/internal/tnyulib.Version=..."
var Version = "0.1.0"
