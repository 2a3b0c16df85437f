package main

import "github.com/kolkov/critsection/critical"

func main() {
	state := critical.Acquire()
	critical.Release(state)
}
