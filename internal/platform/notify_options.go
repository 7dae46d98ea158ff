// Package platform delivers desktop notifications using the host's native
// mechanism.
package platform

// AppName identifies the application to notification daemons.
const AppName = "ShineyPaint"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// TimeoutMS overrides the display duration where supported. Zero selects
	// a short default.
	TimeoutMS int
}

func (o Options) timeout() int {
	if o.TimeoutMS > 0 {
		return o.TimeoutMS
	}
	return 3000
}
