package main

import (
	"fmt"

	"github.com/kolkov/critsection/critical"

	_ "github.com/kolkov/critsection/backends/stdlock"
)

func main() {
	critical.Do(func() {
		fmt.Println("protected")
	})
}
