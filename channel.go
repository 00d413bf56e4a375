//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
	"github.com/obinnaokechukwu/ampgo/internal/handles"
)

// Channel tracks one playing instance of a sound object. The zero Channel
// is invalid.
type Channel struct {
	ptr uintptr
}

// ChannelEventCallback is invoked when a subscribed playback event fires on
// a channel. It runs on the engine thread that raised the event; keep it
// short and do not block.
type ChannelEventCallback func(ch Channel)

// channelEventState is the per-subscription record the native event
// trampoline resolves its user_data against.
type channelEventState struct {
	event    ChannelEvent
	callback ChannelEventCallback
}

// The event trampoline is registered once and shared by every subscription
// so repeated On calls never exhaust purego's callback slots. The native
// user_data carries a handle into the bridge table; a subscription that has
// been dropped from the table simply resolves to nothing.
var (
	channelEventOnce sync.Once
	channelEventPtr  uintptr
)

func initChannelEventCallback() {
	channelEventOnce.Do(func() {
		// void callback(am_channel_handle source, void* user_data)
		channelEventPtr = purego.NewCallback(func(source uintptr, userData uintptr) uintptr {
			state, ok := handles.Lookup[channelEventState](handles.Default(), handles.Handle(userData))
			if !ok {
				logger().Debug("channel event for unknown subscription",
					zap.Uintptr("user_data", userData))
				return 0
			}
			if state.callback != nil {
				state.callback(Channel{ptr: source})
			}
			return 0
		})
	})
}

// ChannelFromRaw wraps a raw am_channel_handle obtained from engine-side
// code.
func ChannelFromRaw(raw uintptr) Channel {
	return Channel{ptr: raw}
}

// Raw returns the underlying am_channel_handle.
func (c Channel) Raw() uintptr {
	return c.ptr
}

// Valid reports whether the channel references a live engine object.
func (c Channel) Valid() bool {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ChannelIsValid(c.ptr))
}

// ID returns the channel identifier.
func (c Channel) ID() uint64 {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.ChannelGetID(c.ptr)
}

// Playing reports whether the channel is currently playing.
func (c Channel) Playing() bool {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ChannelPlaying(c.ptr))
}

// Stop halts playback immediately.
func (c Channel) Stop() {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelStop(c.ptr)
}

// StopWithFade halts playback after fading out over duration milliseconds.
func (c Channel) StopWithFade(duration float64) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelStopTimeout(c.ptr, duration)
}

// Pause pauses playback immediately.
func (c Channel) Pause() {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelPause(c.ptr)
}

// PauseWithFade pauses playback after fading out over duration milliseconds.
func (c Channel) PauseWithFade(duration float64) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelPauseTimeout(c.ptr, duration)
}

// Resume resumes a paused channel immediately.
func (c Channel) Resume() {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelResume(c.ptr)
}

// ResumeWithFade resumes a paused channel, fading in over duration
// milliseconds.
func (c Channel) ResumeWithFade(duration float64) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelResumeTimeout(c.ptr, duration)
}

// Gain returns the channel gain.
func (c Channel) Gain() float32 {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.ChannelGetGain(c.ptr)
}

// SetGain sets the channel gain.
func (c Channel) SetGain(gain float32) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ChannelSetGain(c.ptr, gain)
}

// State returns the current playback state of the channel.
func (c Channel) State() PlaybackState {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return PlaybackStateStopped
	}
	return PlaybackState(bindings.ChannelGetPlaybackState(c.ptr))
}

// Entity returns the entity the channel plays from. The zero Entity is
// returned when none is associated; check Valid before use.
func (c Channel) Entity() Entity {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return Entity{}
	}
	return EntityFromRaw(bindings.ChannelGetEntity(c.ptr))
}

// Listener returns the listener the channel renders for. The zero Listener
// is returned when none is associated; check Valid before use.
func (c Channel) Listener() Listener {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return Listener{}
	}
	return ListenerFromRaw(bindings.ChannelGetListener(c.ptr))
}

// Room returns the room the channel plays in. The zero Room is returned
// when none is associated; check Valid before use.
func (c Channel) Room() Room {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return Room{}
	}
	return RoomFromRaw(bindings.ChannelGetRoom(c.ptr))
}

// Location returns the spatial location of the channel.
func (c Channel) Location() (Vec3, error) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.ChannelGetLocation == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.ChannelGetLocation(c.ptr), nil
}

// SetLocation sets the spatial location of the channel.
func (c Channel) SetLocation(location Vec3) error {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.ChannelSetLocation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.ChannelSetLocation(c.ptr, location)
	return nil
}

// On subscribes callback to the given playback event on this channel.
//
// The subscription record is retained in the bridge table so the native
// side can reach it for the lifetime of the engine; Shutdown drops all
// subscriptions at once.
func (c Channel) On(event ChannelEvent, callback ChannelEventCallback) error {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if callback == nil {
		return ErrNilObject
	}

	initChannelEventCallback()

	state := &channelEventState{event: event, callback: callback}
	h, err := handles.Register(handles.Default(), state)
	if err != nil {
		return err
	}

	bindings.ChannelOnEvent(c.ptr, uint8(event), channelEventPtr, uintptr(h))
	logger().Debug("channel event subscribed",
		zap.Uint64("channel", c.ID()),
		zap.Stringer("event", event))
	return nil
}
