// Package bot answers a user question end to end.
//
// A Bot validates the question, asks the completion Requestor for a model
// response and assembles the text returned to the caller. When the model
// asks for tool calls instead of answering, each call is dispatched in the
// order the model listed them and the results are joined, one per line.
package bot
