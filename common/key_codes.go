package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	Key1 = 49 // 1 key, welcome section
	Key2 = 50 // 2 key, skills section
	Key3 = 51 // 3 key, experience section
	Key4 = 52 // 4 key, projects section
	Key5 = 53 // 5 key, achievements section

	KeyI     = 73 // I key, toggles the info overlay
	KeyM     = 77 // M key, toggles mute
	KeyEqual = 61 // = key, zoom in
	KeyMinus = 45 // - key, zoom out

	KeyEsc   = 256 // Escape key (GLFW)
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// SectionKeys lists the number keys in navigation order.
var SectionKeys = [5]uint32{Key1, Key2, Key3, Key4, Key5}
