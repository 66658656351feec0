package main

// version is overridable at link time:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"
