// Package models defines the persistence models of the catalog feature.
package models
