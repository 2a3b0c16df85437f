package main

import (
	_ "github.com/kolkov/critsection/backends/spinlock"
	_ "github.com/kolkov/critsection/backends/stdlock"
)

func main() {}
