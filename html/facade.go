package html

import "bytes"

// Buffered wraps a Minifier and an internal buffer, for callers who would
// rather pull finished output out as a []byte than supply their own Sink.
// It is the convenient entry point for one-shot or batch use; streaming
// callers with their own io.Writer should use Minifier directly.
type Buffered struct {
	m   *Minifier
	out bytes.Buffer
}

// NewBuffered returns a Buffered minifier with default configuration.
func NewBuffered() *Buffered {
	return &Buffered{m: New()}
}

// SetRemoveComments mirrors Minifier.SetRemoveComments.
func (b *Buffered) SetRemoveComments(v bool) { b.m.SetRemoveComments(v) }

// SetMinifyCode mirrors Minifier.SetMinifyCode.
func (b *Buffered) SetMinifyCode(v bool) { b.m.SetMinifyCode(v) }

// SetCodeAsHTML mirrors Minifier.SetCodeAsHTML.
func (b *Buffered) SetCodeAsHTML(v bool) { b.m.SetCodeAsHTML(v) }

// Digest feeds chunk through the underlying Minifier, accumulating output
// in the internal buffer.
func (b *Buffered) Digest(chunk []byte) error {
	return b.m.Digest(chunk, &b.out)
}

// Finalize flushes any residual state into the internal buffer.
func (b *Buffered) Finalize() error {
	return b.m.Finalize(&b.out)
}

// Bytes returns everything written so far. The returned slice aliases the
// internal buffer and is only valid until the next Digest/Finalize/Reset
// call.
func (b *Buffered) Bytes() []byte {
	return b.out.Bytes()
}

// Reset clears both the accumulated output and the tokenizer state,
// keeping configuration, so the instance can be reused for a new document.
func (b *Buffered) Reset() {
	b.m.Reset()
	b.out.Reset()
}

// MinifyBytes is a convenience one-shot helper: it minifies src in a single
// call with default configuration and returns the result.
func MinifyBytes(src []byte) ([]byte, error) {
	b := NewBuffered()
	if err := b.Digest(src); err != nil {
		return nil, err
	}
	if err := b.Finalize(); err != nil {
		return nil, err
	}
	out := make([]byte, len(b.Bytes()))
	copy(out, b.Bytes())
	return out, nil
}
