//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
	"github.com/obinnaokechukwu/ampgo/internal/handles"
)

// Codec is a custom audio codec registered with the engine. Methods run on
// whichever engine thread performs the decoding or encoding.
//
// The engine shares one context per registered codec, so at most one
// decoder and one encoder produced by the codec are live at a time.
type Codec interface {
	// Name returns the codec name, e.g. "FLAC".
	Name() string

	// OnRegister is called after the codec is registered with the engine.
	OnRegister()

	// OnUnregister is called when the codec is removed from the engine.
	OnUnregister()

	// CanHandleFile reports whether the codec can decode the given file.
	CanHandleFile(file *NativeFile) bool

	// NewDecoder returns a fresh decoder, or nil if decoding is not
	// supported.
	NewDecoder() Decoder

	// NewEncoder returns a fresh encoder, or nil if encoding is not
	// supported.
	NewEncoder() Encoder
}

// Decoder decodes audio from a file opened by the engine.
type Decoder interface {
	// Open prepares the decoder to read from file and reports success.
	Open(file *NativeFile) bool

	// Close releases decoding resources and reports success.
	Close() bool

	// Format returns the format of the opened stream.
	Format() SoundFormat

	// Load decodes the whole stream into out and returns the number of
	// frames written. out is sized from Format.
	Load(out []byte) uint64

	// Stream decodes length frames starting at seekOffset into out at
	// bufferOffset and returns the number of frames written.
	Stream(out []byte, bufferOffset, seekOffset, length uint64) uint64

	// Seek moves the decode cursor to the given frame and reports
	// success.
	Seek(offset uint64) bool
}

// Encoder encodes audio into a file opened by the engine.
type Encoder interface {
	// Open prepares the encoder to write to file and reports success.
	Open(file *NativeFile) bool

	// Close finalizes the output and reports success.
	Close() bool

	// SetFormat sets the format of the frames that will be written.
	SetFormat(format SoundFormat)

	// Write encodes length frames from in starting at offset and returns
	// the number of frames consumed.
	Write(in []byte, offset, length uint64) uint64
}

// codecState is the per-codec record every codec, decoder and encoder
// trampoline resolves its user_data against. nameBuf backs the config name
// pointer for the lifetime of the registration.
type codecState struct {
	impl    Codec
	nameBuf []byte

	decoder Decoder
	encoder Encoder
	format  SoundFormat
}

// Vtables mirror am_codec_vtable, am_codec_decoder_vtable and
// am_codec_encoder_vtable. Built once, shared by every registered codec.
var (
	codecVTablesOnce sync.Once
	codecVTable      [3]uintptr
	decoderVTable    [8]uintptr
	encoderVTable    [6]uintptr
)

func lookupCodecState(userData uintptr) *codecState {
	state, ok := handles.Lookup[codecState](handles.Default(), handles.Handle(userData))
	if !ok {
		return nil
	}
	return state
}

func initCodecVTables() {
	codecVTablesOnce.Do(func() {
		// am_codec_vtable: on_register, on_unregister, on_can_handle_file.
		codecVTable[0] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupCodecState(userData); state != nil {
				state.impl.OnRegister()
			}
			return 0
		})
		codecVTable[1] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupCodecState(userData)
			if state == nil {
				return 0
			}
			state.impl.OnUnregister()
			if handles.Remove[codecState](handles.Default(), handles.Handle(userData)) {
				logger().Debug("custom codec released", zap.Uintptr("user_data", userData))
			}
			return 0
		})
		codecVTable[2] = purego.NewCallback(func(userData, fileType, fileHandle uintptr) uintptr {
			state := lookupCodecState(userData)
			if state != nil && state.impl.CanHandleFile(&NativeFile{native: fileHandleFromWords(fileType, fileHandle)}) {
				return 1
			}
			return 0
		})

		// am_codec_decoder_vtable: create, destroy, open, close,
		// get_format, load, stream, seek.
		decoderVTable[0] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupCodecState(userData); state != nil {
				state.decoder = state.impl.NewDecoder()
			}
			return 0
		})
		decoderVTable[1] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupCodecState(userData); state != nil {
				state.decoder = nil
			}
			return 0
		})
		decoderVTable[2] = purego.NewCallback(func(userData, fileType, fileHandle uintptr) uintptr {
			state := lookupCodecState(userData)
			if state == nil || state.decoder == nil {
				return 0
			}
			if !state.decoder.Open(&NativeFile{native: fileHandleFromWords(fileType, fileHandle)}) {
				return 0
			}
			state.format = state.decoder.Format()
			return 1
		})
		decoderVTable[3] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupCodecState(userData)
			if state == nil || state.decoder == nil || !state.decoder.Close() {
				return 0
			}
			return 1
		})
		decoderVTable[4] = purego.NewCallback(func(userData, format uintptr) uintptr {
			state := lookupCodecState(userData)
			if state != nil && format != 0 {
				*(*SoundFormat)(unsafe.Pointer(format)) = state.format
			}
			return 0
		})
		decoderVTable[5] = purego.NewCallback(func(userData, out uintptr) uint64 {
			state := lookupCodecState(userData)
			if state == nil || state.decoder == nil || out == 0 {
				return 0
			}
			size := state.format.FramesCount * uint64(state.format.FrameSize)
			if size == 0 {
				return 0
			}
			buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), size)
			return state.decoder.Load(buf)
		})
		decoderVTable[6] = purego.NewCallback(func(userData, out uintptr, bufferOffset, seekOffset, length uint64) uint64 {
			state := lookupCodecState(userData)
			if state == nil || state.decoder == nil || out == 0 {
				return 0
			}
			size := (bufferOffset + length) * uint64(state.format.FrameSize)
			if size == 0 {
				return 0
			}
			buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), size)
			return state.decoder.Stream(buf, bufferOffset, seekOffset, length)
		})
		decoderVTable[7] = purego.NewCallback(func(userData uintptr, offset uint64) uintptr {
			state := lookupCodecState(userData)
			if state == nil || state.decoder == nil || !state.decoder.Seek(offset) {
				return 0
			}
			return 1
		})

		// am_codec_encoder_vtable: create, destroy, open, close,
		// set_format, write.
		encoderVTable[0] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupCodecState(userData); state != nil {
				state.encoder = state.impl.NewEncoder()
			}
			return 0
		})
		encoderVTable[1] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupCodecState(userData); state != nil {
				state.encoder = nil
			}
			return 0
		})
		encoderVTable[2] = purego.NewCallback(func(userData, fileType, fileHandle uintptr) uintptr {
			state := lookupCodecState(userData)
			if state == nil || state.encoder == nil || !state.encoder.Open(&NativeFile{native: fileHandleFromWords(fileType, fileHandle)}) {
				return 0
			}
			return 1
		})
		encoderVTable[3] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupCodecState(userData)
			if state == nil || state.encoder == nil || !state.encoder.Close() {
				return 0
			}
			return 1
		})
		encoderVTable[4] = purego.NewCallback(func(userData, format uintptr) uintptr {
			state := lookupCodecState(userData)
			if state != nil && state.encoder != nil && format != 0 {
				state.format = *(*SoundFormat)(unsafe.Pointer(format))
				state.encoder.SetFormat(state.format)
			}
			return 0
		})
		encoderVTable[5] = purego.NewCallback(func(userData, in uintptr, offset, length uint64) uint64 {
			state := lookupCodecState(userData)
			if state == nil || state.encoder == nil || in == 0 {
				return 0
			}
			size := length * uint64(state.format.FrameSize)
			if size == 0 {
				return 0
			}
			buf := unsafe.Slice((*byte)(unsafe.Pointer(in)), size)
			return state.encoder.Write(buf, offset, length)
		})
	})
}

// RegisteredCodec tracks a custom codec registered with the engine.
type RegisteredCodec struct {
	name   string
	bridge handles.Handle
}

// RegisterCodec registers a custom codec with the engine. The codec stays
// reachable through the bridge table until it is unregistered.
func RegisterCodec(impl Codec) (*RegisteredCodec, error) {
	if impl == nil {
		return nil, ErrNilObject
	}
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}

	initCodecVTables()

	state := &codecState{impl: impl, nameBuf: cString(impl.Name())}
	h, err := handles.Register(handles.Default(), state)
	if err != nil {
		return nil, err
	}

	userData := uintptr(h)
	cfg := bindings.CodecConfig{
		Name:            uintptr(unsafe.Pointer(&state.nameBuf[0])),
		UserData:        userData,
		VTable:          uintptr(unsafe.Pointer(&codecVTable[0])),
		DecoderVTable:   uintptr(unsafe.Pointer(&decoderVTable[0])),
		DecoderUserData: userData,
		EncoderVTable:   uintptr(unsafe.Pointer(&encoderVTable[0])),
		EncoderUserData: userData,
	}
	bindings.CodecRegister(unsafe.Pointer(&cfg))

	logger().Debug("custom codec registered",
		zap.String("name", impl.Name()),
		zap.Uintptr("user_data", userData))
	return &RegisteredCodec{name: impl.Name(), bridge: h}, nil
}

// Name returns the codec name.
func (c *RegisteredCodec) Name() string {
	return c.name
}

// Unregister removes the codec from the engine and drops its bridge
// record.
func (c *RegisteredCodec) Unregister() {
	if !bindings.IsLoaded() {
		return
	}
	bindings.CodecUnregister(c.name)
	// The native unregister path normally removes the bridge record
	// through on_unregister; sweep it here in case the native side never
	// ran.
	if c.bridge != 0 {
		handles.Remove[codecState](handles.Default(), c.bridge)
		c.bridge = 0
	}
}

// NativeCodec is a view over an engine codec, custom or built in. The zero
// NativeCodec is invalid.
type NativeCodec struct {
	ptr uintptr
}

// FindCodec looks up an engine codec by name.
func FindCodec(name string) (NativeCodec, error) {
	if !bindings.IsLoaded() {
		return NativeCodec{}, ErrNotLoaded
	}
	ptr := bindings.CodecFind(name)
	if ptr == 0 {
		return NativeCodec{}, ErrCodecNotFound
	}
	return NativeCodec{ptr: ptr}, nil
}

// FindCodecForFile looks up the engine codec able to decode the given
// file.
func FindCodecForFile(file *NativeFile) (NativeCodec, error) {
	if !bindings.IsLoaded() {
		return NativeCodec{}, ErrNotLoaded
	}
	if bindings.CodecFindForFile == nil {
		return NativeCodec{}, ErrUnsupportedPlatform
	}
	ptr := bindings.CodecFindForFile(file.native)
	if ptr == 0 {
		return NativeCodec{}, ErrCodecNotFound
	}
	return NativeCodec{ptr: ptr}, nil
}

// Valid reports whether the codec references a live engine object.
func (c NativeCodec) Valid() bool {
	return c.ptr != 0
}

// Name returns the codec name.
func (c NativeCodec) Name() string {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return ""
	}
	return takeString(bindings.CodecGetName(c.ptr))
}

// CanHandleFile reports whether the codec can decode the given file.
func (c NativeCodec) CanHandleFile(file *NativeFile) (bool, error) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return false, ErrNotLoaded
	}
	if bindings.CodecCanHandleFile == nil {
		return false, ErrUnsupportedPlatform
	}
	return toBool(bindings.CodecCanHandleFile(c.ptr, file.native)), nil
}

// NewDecoder creates a decoder instance from the codec.
func (c NativeCodec) NewDecoder() (*NativeDecoder, error) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	ptr := bindings.CodecDecoderCreateFromCodec(c.ptr)
	if ptr == 0 {
		return nil, ErrInvalidHandle
	}
	return &NativeDecoder{ptr: ptr}, nil
}

// NewEncoder creates an encoder instance from the codec.
func (c NativeCodec) NewEncoder() (*NativeEncoder, error) {
	if c.ptr == 0 || !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	ptr := bindings.CodecEncoderCreateFromCodec(c.ptr)
	if ptr == 0 {
		return nil, ErrInvalidHandle
	}
	return &NativeEncoder{ptr: ptr}, nil
}

// NewDecoderFor creates a decoder instance for the named codec.
func NewDecoderFor(codecName string) (*NativeDecoder, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	ptr := bindings.CodecDecoderCreate(codecName)
	if ptr == 0 {
		return nil, ErrCodecNotFound
	}
	return &NativeDecoder{ptr: ptr}, nil
}

// NewEncoderFor creates an encoder instance for the named codec.
func NewEncoderFor(codecName string) (*NativeEncoder, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	ptr := bindings.CodecEncoderCreate(codecName)
	if ptr == 0 {
		return nil, ErrCodecNotFound
	}
	return &NativeEncoder{ptr: ptr}, nil
}

// NativeDecoder is an engine decoder instance.
type NativeDecoder struct {
	ptr uintptr
}

// Open prepares the decoder to read from file.
func (d *NativeDecoder) Open(file *NativeFile) error {
	if d.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.CodecDecoderOpen == nil {
		return ErrUnsupportedPlatform
	}
	if !toBool(bindings.CodecDecoderOpen(d.ptr, file.native)) {
		return ErrInvalidHandle
	}
	return nil
}

// Close releases decoding resources.
func (d *NativeDecoder) Close() bool {
	if d.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.CodecDecoderClose(d.ptr))
}

// Format returns the format of the opened stream.
func (d *NativeDecoder) Format() (SoundFormat, error) {
	if d.ptr == 0 || !bindings.IsLoaded() {
		return SoundFormat{}, ErrNotLoaded
	}
	var format SoundFormat
	if !toBool(bindings.CodecDecoderGetFormat(d.ptr, unsafe.Pointer(&format))) {
		return SoundFormat{}, ErrInvalidHandle
	}
	return format, nil
}

// Load decodes the whole stream into out and returns the number of frames
// written.
func (d *NativeDecoder) Load(out []byte) uint64 {
	if d.ptr == 0 || !bindings.IsLoaded() || len(out) == 0 {
		return 0
	}
	return bindings.CodecDecoderLoad(d.ptr, unsafe.Pointer(&out[0]))
}

// Stream decodes length frames starting at seekOffset into out at
// bufferOffset and returns the number of frames written.
func (d *NativeDecoder) Stream(out []byte, bufferOffset, seekOffset, length uint64) uint64 {
	if d.ptr == 0 || !bindings.IsLoaded() || len(out) == 0 {
		return 0
	}
	return bindings.CodecDecoderStream(d.ptr, unsafe.Pointer(&out[0]), bufferOffset, seekOffset, length)
}

// Seek moves the decode cursor to the given frame.
func (d *NativeDecoder) Seek(offset uint64) bool {
	if d.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.CodecDecoderSeek(d.ptr, offset))
}

// Destroy destroys the decoder instance. It is unusable afterwards.
func (d *NativeDecoder) Destroy() {
	if d.ptr != 0 && bindings.IsLoaded() {
		bindings.CodecDecoderDestroy(d.ptr)
	}
	d.ptr = 0
}

// NativeEncoder is an engine encoder instance.
type NativeEncoder struct {
	ptr uintptr
}

// Open prepares the encoder to write to file.
func (e *NativeEncoder) Open(file *NativeFile) error {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.CodecEncoderOpen == nil {
		return ErrUnsupportedPlatform
	}
	if !toBool(bindings.CodecEncoderOpen(e.ptr, file.native)) {
		return ErrInvalidHandle
	}
	return nil
}

// Close finalizes the output.
func (e *NativeEncoder) Close() bool {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.CodecEncoderClose(e.ptr))
}

// SetFormat sets the format of the frames that will be written. Must be
// called before Open.
func (e *NativeEncoder) SetFormat(format SoundFormat) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.CodecEncoderSetFormat(e.ptr, unsafe.Pointer(&format))
}

// Write encodes length frames from in starting at offset and returns the
// number of frames consumed.
func (e *NativeEncoder) Write(in []byte, offset, length uint64) uint64 {
	if e.ptr == 0 || !bindings.IsLoaded() || len(in) == 0 {
		return 0
	}
	return bindings.CodecEncoderWrite(e.ptr, unsafe.Pointer(&in[0]), offset, length)
}

// Destroy destroys the encoder instance. It is unusable afterwards.
func (e *NativeEncoder) Destroy() {
	if e.ptr != 0 && bindings.IsLoaded() {
		bindings.CodecEncoderDestroy(e.ptr)
	}
	e.ptr = 0
}
