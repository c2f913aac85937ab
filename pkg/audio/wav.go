package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNotWAV is returned when the data does not start with a RIFF/WAVE header
var ErrNotWAV = errors.New("not a RIFF/WAVE stream")

// Format describes 16-bit PCM audio
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

type riffHeader struct {
	ID   [4]byte
	Size uint32
	Kind [4]byte
}

type chunkHeader struct {
	ID   [4]byte
	Size uint32
}

type fmtChunk struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// EncodeWAV wraps little-endian 16-bit PCM samples in a WAV container
func EncodeWAV(format Format, pcm []byte) []byte {
	blockAlign := format.Channels * format.BitDepth / 8

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	binary.Write(&buf, binary.LittleEndian, riffHeader{
		ID:   [4]byte{'R', 'I', 'F', 'F'},
		Size: uint32(36 + len(pcm)),
		Kind: [4]byte{'W', 'A', 'V', 'E'},
	})
	binary.Write(&buf, binary.LittleEndian, chunkHeader{ID: [4]byte{'f', 'm', 't', ' '}, Size: 16})
	binary.Write(&buf, binary.LittleEndian, fmtChunk{
		AudioFormat:   1,
		Channels:      uint16(format.Channels),
		SampleRate:    uint32(format.SampleRate),
		ByteRate:      uint32(format.SampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(format.BitDepth),
	})
	binary.Write(&buf, binary.LittleEndian, chunkHeader{ID: [4]byte{'d', 'a', 't', 'a'}, Size: uint32(len(pcm))})
	buf.Write(pcm)

	return buf.Bytes()
}

// DecodeWAV returns the format and PCM payload of a WAV file
func DecodeWAV(data []byte) (Format, []byte, error) {
	reader := bytes.NewReader(data)

	var header riffHeader
	if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
		return Format{}, nil, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(header.ID[:]) != "RIFF" || string(header.Kind[:]) != "WAVE" {
		return Format{}, nil, ErrNotWAV
	}

	var format Format
	for {
		var chunk chunkHeader
		if err := binary.Read(reader, binary.LittleEndian, &chunk); err != nil {
			if errors.Is(err, io.EOF) {
				return Format{}, nil, errors.New("WAV has no data chunk")
			}
			return Format{}, nil, fmt.Errorf("read chunk header: %w", err)
		}

		switch string(chunk.ID[:]) {
		case "fmt ":
			var fc fmtChunk
			if err := binary.Read(reader, binary.LittleEndian, &fc); err != nil {
				return Format{}, nil, fmt.Errorf("read fmt chunk: %w", err)
			}
			format = Format{
				SampleRate: int(fc.SampleRate),
				Channels:   int(fc.Channels),
				BitDepth:   int(fc.BitsPerSample),
			}
			// Skip any extra format bytes
			if extra := int64(chunk.Size) - 16; extra > 0 {
				reader.Seek(extra, io.SeekCurrent)
			}
		case "data":
			if format.SampleRate == 0 {
				return Format{}, nil, errors.New("WAV data chunk precedes fmt chunk")
			}
			size := min(int(chunk.Size), reader.Len())
			pcm := make([]byte, size)
			if _, err := io.ReadFull(reader, pcm); err != nil {
				return Format{}, nil, fmt.Errorf("read data chunk: %w", err)
			}
			return format, pcm, nil
		default:
			reader.Seek(int64(chunk.Size), io.SeekCurrent)
		}
	}
}
