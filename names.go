//go:build !windows
// +build !windows

package main

import (
	"os"
)

func defaultRatingsDir() string {
	return os.Getenv("HOME") + "/ratings"
}

func defaultCacheName() string {
	return os.Getenv("HOME") + "/.ratemap_aggregate_cache"
}
