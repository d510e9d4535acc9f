package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestWallClock(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), WallClock, "example.com/internal/services")
}

func TestNoDirectOsExit(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoDirectOsExit, "exitmain")
}
