package playback

// Media is the external playback primitive the player commands. Commands
// are fire-and-forget requests; their actual effect is confirmed only
// through the MediaListener notifications.
type Media interface {
	// Load binds a media URL, discarding whatever was loaded before.
	Load(url string)
	// Play requests playback. It may fail (autoplay rejection); the
	// player treats a failure as "remained paused".
	Play() error
	// Pause requests a pause.
	Pause()
	// CurrentTime reports the primitive's playback position in seconds.
	CurrentTime() float64
	// SetCurrentTime moves the playback position.
	SetCurrentTime(seconds float64)
	// Duration reports the media length in seconds, 0 until known.
	Duration() float64
}

// MediaListener receives the primitive's notifications. These are the sole
// channel through which primitive-driven state re-enters the player; the
// Player implements it.
type MediaListener interface {
	OnTimeUpdate(currentTime, duration float64)
	OnLoadedMetadata(duration float64)
	OnPlay()
	OnPause()
	OnEnded()
}
