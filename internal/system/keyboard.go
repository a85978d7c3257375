package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	KeyEsc   uint16 = 1
	KeySpace uint16 = 57
	KeyF4    uint16 = 62
	KeyUp    uint16 = 103
	KeyLeft  uint16 = 105
	KeyRight uint16 = 106
	KeyDown  uint16 = 108

	evKey = 0x01
)

// keyPresses parses a buffer of input_event records and returns the codes
// of keys that went down. A trailing partial record is ignored.
func keyPresses(buf []byte, tvSize int) []uint16 {
	eventSize := tvSize + 2 + 2 + 4
	var codes []uint16
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 {
			codes = append(codes, code)
		}
	}
	return codes
}
