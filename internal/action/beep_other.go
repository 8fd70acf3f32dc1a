//go:build !linux

package action

// No audio playback off Linux - beeps are silent.

func Beep() {}
