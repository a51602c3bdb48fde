// Package plaintext provides the fallback Normaliser for text files.
package plaintext
