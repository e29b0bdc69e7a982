// Package app holds identifiers shared across the diary packages.
package app

// Name is the application name used for the config and data directory.
const Name = "diary"
