package bloom

import "encoding/binary"

func readU64BE(b []byte) uint64     { return binary.BigEndian.Uint64(b) }
func readU64LE(b []byte) uint64     { return binary.LittleEndian.Uint64(b) }
func writeU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
