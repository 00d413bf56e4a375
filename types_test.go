//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"testing"
	"unsafe"
)

// SoundFormat crosses the boundary by pointer, so its layout must match
// am_sound_format exactly.
func TestSoundFormatLayout(t *testing.T) {
	var f SoundFormat

	if got := unsafe.Sizeof(f); got != 32 {
		t.Errorf("Sizeof(SoundFormat) = %d, want 32", got)
	}

	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"SampleRate", unsafe.Offsetof(f.SampleRate), 0},
		{"NumChannels", unsafe.Offsetof(f.NumChannels), 4},
		{"BitsPerSample", unsafe.Offsetof(f.BitsPerSample), 8},
		{"FramesCount", unsafe.Offsetof(f.FramesCount), 16},
		{"FrameSize", unsafe.Offsetof(f.FrameSize), 24},
		{"SampleType", unsafe.Offsetof(f.SampleType), 28},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("offset of %s = %d, want %d", o.name, o.got, o.want)
		}
	}
}

func TestPlaybackStateString(t *testing.T) {
	cases := map[PlaybackState]string{
		PlaybackStateStopped:        "stopped",
		PlaybackStatePlaying:        "playing",
		PlaybackStateFadingIn:       "fading_in",
		PlaybackStateFadingOut:      "fading_out",
		PlaybackStateSwitchingState: "switching_state",
		PlaybackStatePaused:         "paused",
		PlaybackState(99):           "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("PlaybackState(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestChannelEventString(t *testing.T) {
	cases := map[ChannelEvent]string{
		ChannelEventBegin:  "begin",
		ChannelEventEnd:    "end",
		ChannelEventResume: "resume",
		ChannelEventPause:  "pause",
		ChannelEventStop:   "stop",
		ChannelEventLoop:   "loop",
		ChannelEvent(42):   "unknown",
	}
	for event, want := range cases {
		if got := event.String(); got != want {
			t.Errorf("ChannelEvent(%d).String() = %q, want %q", event, got, want)
		}
	}
}

func TestWallMaterialConversion(t *testing.T) {
	in := WallMaterial{
		Type:       WallMaterialBrickPainted,
		Absorption: [9]float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
	}
	out := goWallMaterial(wireWallMaterial(in))
	if out != in {
		t.Errorf("wall material round trip = %+v, want %+v", out, in)
	}
}
