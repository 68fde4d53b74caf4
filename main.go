package main

import "github.com/nutlog/nutlog/cmd/nutlog"

func main() {
	nutlog.Execute()
}
