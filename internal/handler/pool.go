package handler

import (
	"bytes"
	"sync"
)

// Snapshot responses are a few KB; buffers that grew past maxPooledBuffer
// (a long inventory or history dump) are left to the GC.
const (
	snapshotBufferSize = 4 << 10
	maxPooledBuffer    = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, snapshotBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf and returns it to the pool unless it is oversized
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
