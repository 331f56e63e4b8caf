package source

// Chain concatenates sources into a single ChunkSource that exhausts each in
// order before moving to the next. This realizes the tokenizer's lifecycle
// contract: an optional initial in-memory span consumed first, then an
// optional chunked stream.
func Chain(sources ...ChunkSource) ChunkSource {
	return &chainSource{sources: sources, active: -1}
}

type chainSource struct {
	sources []ChunkSource
	idx     int
	active  int // index of the source that most recently returned a non-empty chunk
}

func (c *chainSource) Next() ([]byte, error) {
	for c.idx < len(c.sources) {
		chunk, err := c.sources[c.idx].Next()
		if err != nil {
			c.idx = len(c.sources)
			return nil, err
		}
		if len(chunk) > 0 {
			c.active = c.idx
			return chunk, nil
		}
		c.idx++
	}
	return nil, nil
}

func (c *chainSource) BackUp(n int) {
	if c.active >= 0 && c.active < len(c.sources) {
		c.sources[c.active].BackUp(n)
	}
}
