// Package notify emits desktop notifications for clipboard actions.
package notify

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"github.com/example/shineypaint/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCopy emits a notification when a colour is copied to the clipboard.
	EventCopy Event = "copy"
	// EventPaste emits a notification when a colour is taken from the clipboard.
	EventPaste Event = "paste"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "ShineyPaint",
		Events: map[Event]EventPreference{
			EventCopy:  {Template: "Copied %s to clipboard"},
			EventPaste: {Template: "Pasted %s from clipboard"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SHINEYPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("SHINEYPAINT_NOTIFY_COPY_TEXT", EventCopy)
	apply("SHINEYPAINT_NOTIFY_PASTE_TEXT", EventPaste)
	return prefs
}

// send is replaced in tests.
var send = platform.Notify

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event is switched on.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event]
}

// Copy announces a copied colour, showing a swatch of it where supported.
func (n *Notifier) Copy(style string, swatch color.Color) {
	n.colorEvent(EventCopy, style, swatch)
}

// Paste announces a colour applied from the clipboard.
func (n *Notifier) Paste(style string, swatch color.Color) {
	n.colorEvent(EventPaste, style, swatch)
}

func (n *Notifier) colorEvent(event Event, style string, swatch color.Color) {
	if !n.Enabled(event) {
		return
	}
	opts := platform.Options{}
	if swatch != nil {
		if path, cleanup, err := writeSwatch(swatch); err != nil {
			log.Printf("notification swatch: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(event, style, opts)
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

// swatchSize is the edge of the notification icon in pixels.
const swatchSize = 48

func writeSwatch(c color.Color) (string, func(), error) {
	img := image.NewRGBA(image.Rect(0, 0, swatchSize, swatchSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	f, err := os.CreateTemp("", "shineypaint-swatch-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove swatch: %v", err)
		}
	}
	return path, cleanup, nil
}
