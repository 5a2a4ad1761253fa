package main

import "github.com/techatnyu/tnyu/cmd/tnyu"

func main() {
	tnyu.Main()
}
