// Package logger provides zerolog-based structured logging for ollamakit.
//
// The client is silent by default: it only emits debug-level events about
// outgoing requests and stream lifecycle. Applications that want those
// events pass a logger when constructing the client:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "console"})
//	client, err := ollama.New(ollama.WithLogger(log))
package logger
