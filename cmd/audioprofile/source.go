package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	ap "github.com/gen2brain/audioprofile"
)

// mediaSource describes the stream layout of an encoded audio file.
type mediaSource interface {
	// Duration returns the total duration of the audio stream.
	Duration() (time.Duration, error)
	// NumChans returns the number of audio channels.
	NumChans() uint16
	// SampleRate returns the sample rate in Hz.
	SampleRate() uint32
	// BitDepth returns the bit depth of the decoded samples.
	BitDepth() uint16
	// IsFloat returns true if the decoded samples are floating-point.
	IsFloat() bool
}

// openSource picks a decoder from the file extension of name.
func openSource(name string, r io.ReadSeeker) (mediaSource, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav", ".wave":
		return newWavSource(r)
	case ".mp3":
		return newMp3Source(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// sourceConfig returns the configuration a client playing src would request.
func sourceConfig(src mediaSource) (ap.Config, error) {
	f := &audio.Format{
		NumChannels: int(src.NumChans()),
		SampleRate:  int(src.SampleRate()),
	}

	return ap.ConfigFromAudioFormat(f, int(src.BitDepth()), src.IsFloat())
}

type wavSource struct {
	*wav.Decoder
}

func newWavSource(r io.ReadSeeker) (mediaSource, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}

	return &wavSource{Decoder: decoder}, nil
}

func (w *wavSource) SampleRate() uint32 { return w.Decoder.SampleRate }
func (w *wavSource) NumChans() uint16   { return w.Decoder.NumChans }
func (w *wavSource) BitDepth() uint16   { return uint16(w.Decoder.BitDepth) }
func (w *wavSource) IsFloat() bool      { return w.Decoder.WavAudioFormat == 3 } // 3 == IEEE float

type mp3Source struct {
	sampleRate uint32
	length     int64 // Total decoded size in bytes
}

func newMp3Source(r io.Reader) (mediaSource, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("invalid MP3 file: %w", err)
	}

	return &mp3Source{
		sampleRate: uint32(decoder.SampleRate()),
		length:     decoder.Length(),
	}, nil
}

func (m *mp3Source) Duration() (time.Duration, error) {
	if m.length < 0 {
		return 0, errors.New("unknown stream length")
	}

	bytesPerFrame := int64(m.NumChans()) * int64(m.BitDepth()/8)
	seconds := float64(m.length/bytesPerFrame) / float64(m.sampleRate)

	return time.Duration(seconds * float64(time.Second)), nil
}

func (m *mp3Source) SampleRate() uint32 { return m.sampleRate }
func (m *mp3Source) NumChans() uint16   { return 2 }  // always decodes to stereo
func (m *mp3Source) BitDepth() uint16   { return 16 } // always decodes to 16-bit
func (m *mp3Source) IsFloat() bool      { return false }
