//go:build !unix

package display

func fdWidth(uintptr) int { return 0 }
