// Package tools holds the tools advertised to the language model and the
// dispatcher that executes the calls it requests.
//
// Three tools are available, each taking one string argument named content:
//
//	convertToUpperCase       "Uppercase: " + upper-cased content
//	reverseString            "Reverse: " + content reversed by code point
//	replaceSpacesWithDashes  "Dashed: " + content with whitespace runs as "-"
//
// Any other tool name yields UnknownToolResult.
package tools
