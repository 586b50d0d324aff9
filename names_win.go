// +build windows

package main

import "os/user"

func defaultRatingsDir() string {
	usr, err := user.Current()
	if err != nil {
		panic(err)
	}
	return usr.HomeDir + "/ratings"
}

func defaultCacheName() string {
	usr, err := user.Current()
	if err != nil {
		panic(err)
	}
	return usr.HomeDir + "/ratemap_aggregate_cache"
}
