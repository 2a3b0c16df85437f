package main

import "github.com/kolkov/critsection/critical"

type nopImpl struct{}

func (nopImpl) Acquire() critical.RawRestoreState {
	var zero critical.RawRestoreState
	return zero
}

func (nopImpl) Release(state critical.RawRestoreState) {}

func init() {
	critical.SetImpl(nopImpl{})
}

func main() {}
