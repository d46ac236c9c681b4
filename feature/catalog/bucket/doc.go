// Package bucket provides catalog sources and sinks backed by object storage.
// Objects use the same xlsx and csv layouts as local files.
package bucket
