// Package autostart installs and removes the hook that launches hktray
// when the user logs in: a LaunchAgent on macOS, an XDG autostart entry
// on Linux, a Run registry value on Windows.
package autostart
