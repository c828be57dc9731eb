package handler

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize keeps oversized buffers (large profile lists) out of the pool
const maxPooledBufferSize = 64 << 10

// bufferPool holds buffers for JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
