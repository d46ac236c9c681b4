// Package memory provides in-memory catalog sources and sinks.
package memory
