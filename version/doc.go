// Package version exposes the library version and the User-Agent string
// sent with every request to the Ollama server.
//
// Version and git commit can be overridden at build time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/ollamakit/version.Version=1.2.0"
package version
