package bind_group_provider

// BufferWrite describes one uniform upload queued by the Scene for the Renderer:
// Data is written into the buffer at Binding of Provider, starting at Offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
