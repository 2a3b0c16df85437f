//go:build !hw

package main

import _ "github.com/kolkov/critsection/backends/stdlock"
