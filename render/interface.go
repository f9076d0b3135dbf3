package render

// Renderer draws one visual layer of the frame into the buffer.
// Implementations must not retain buf between frames and must tolerate
// any context dimensions, including degenerate ones
type Renderer interface {
	// Name identifies the renderer for logs
	Name() string

	// Render draws this layer into the buffer for the frame state in ctx
	Render(ctx Context, buf *Buffer)
}
