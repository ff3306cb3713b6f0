// Promptbot is an HTTP service that answers short questions with an
// OpenAI chat model and runs the text tools the model asks for.
//
// Usage:
//
//	# Start the server (reads config.yaml if present, then .env and the environment)
//	promptbot run
//
//	# Start with a custom configuration file
//	promptbot run --config /etc/promptbot/config.yaml
//
//	# Ask one question through the full bot pipeline
//	promptbot ask "Reverse the word banana"
//
//	# Ping a running instance's health endpoint once
//	promptbot ping
//
//	# Show version information
//	promptbot version
package main

func main() {
	Execute()
}
