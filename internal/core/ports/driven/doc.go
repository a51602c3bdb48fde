// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Tokenizer: Splits text into tokens with character offsets
//   - Recognizer: Proposes candidate temporal spans for a document
//   - RecognizerPipeline: Runs recognizers in a fixed order
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ConfigStore: Persisted annotation settings. Without it, defaults apply.
//   - DocumentStore: Annotated document persistence. Without it, --save is refused.
//   - Connector: Reads text files and watches them for changes.
//   - Normaliser: Strips markup before tokenization. Without one, raw bytes are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or recognizer package
package driven
