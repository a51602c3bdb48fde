// Package connectors provides implementations of the Connector interface
// for document sources. Each connector knows how to fetch text from a
// specific source type and report changes to it.
package connectors
