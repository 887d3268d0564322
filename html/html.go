// Package html implements a streaming HTML minifier: it consumes arbitrary
// HTML source in successive byte chunks and emits a minified equivalent
// without ever materializing a parse tree or DOM. Chunk boundaries may fall
// anywhere — mid-tag, mid-attribute, mid-comment, mid-script body — and the
// output is identical regardless of how the input was split.
package html

const doctypeWord = "DOCTYPE"

// Minifier is the long-lived streaming tokenizer/rewriter. It carries all
// state across Digest calls and is not safe for concurrent use; distinct
// instances are fully independent. The zero value is not usable — construct
// one with New.
type Minifier struct {
	// configuration, advisory after the first Digest call.
	removeComments bool
	minifyCode     bool
	codeAsHTML     bool

	state state
	sink  Sink // valid only for the duration of a Digest/Finalize call

	hasEmitted        bool // false until the first byte has been written
	lastEmitted       byte
	pendingWhitespace bool
	cjLast            bool // was the last emitted Text codepoint CJK?

	utf8Tail     []byte // 0-3 bytes: a UTF-8 sequence split across chunks
	utf8TailWant int

	byteBuf [1]byte

	// tag/attribute recognition
	tagNameBuf     nameBuf
	tagKind        tagKind
	tagNameOrig    []byte // original-case bytes of the tag name as emitted

	attrNameBuf   nameBuf
	attrIsSpecial bool
	specialBuf    []byte
	quote         byte // 0 when unquoted
	eqCommitted   bool
	awaitingEq    bool
	inEndTag      bool

	// current open tag's raw-element candidacy
	curTagIsScript  bool
	curTagIsStyle   bool
	curTagTypeSeen  bool
	curTagTypeValue []byte

	// raw element buffering / close detection
	rawKind        rawKind
	rawMinify      bool
	rawBuf         []byte
	closeWant      string // lowercase "</tagname", precomputed at raw-mode entry
	closeIdx       int
	closeScanBuf   []byte
	rawReturnState state

	// comment handling
	commentVerbatim bool
	commentDashRun  int
}

// New returns a fresh Minifier with default configuration
// (remove_comments=true, minify_code=true).
func New() *Minifier {
	m := &Minifier{
		removeComments: true,
		minifyCode:     true,
	}
	m.reset()
	return m
}

// SetRemoveComments configures whether HTML comments are dropped (true,
// the default) or passed through verbatim. Takes effect on the next byte
// processed; changing it mid-element is the caller's responsibility.
func (m *Minifier) SetRemoveComments(v bool) { m.removeComments = v }

// SetMinifyCode configures whether <script>/<style>/<code> bodies are
// delegated to the embedded CSS/JS minifier (true, the default) or left
// untouched (treated like <pre>).
func (m *Minifier) SetMinifyCode(v bool) { m.minifyCode = v }

// SetCodeAsHTML configures how <code> bodies are minified when MinifyCode is
// enabled: false (the default) runs the embedded JS minifier over the body,
// the common case for inline code samples; true recursively minifies the
// body as nested HTML instead, for documentation generators that embed
// markup samples inside <code>.
func (m *Minifier) SetCodeAsHTML(v bool) { m.codeAsHTML = v }

// reset clears all mutable state but preserves configuration.
func (m *Minifier) reset() {
	m.state = stateText
	m.hasEmitted = false
	m.lastEmitted = 0
	m.pendingWhitespace = false
	m.cjLast = false
	m.utf8Tail = m.utf8Tail[:0]
	m.utf8TailWant = 0
	m.tagNameBuf.reset()
	m.tagNameOrig = m.tagNameOrig[:0]
	m.attrNameBuf.reset()
	m.attrIsSpecial = false
	m.specialBuf = m.specialBuf[:0]
	m.quote = 0
	m.eqCommitted = false
	m.awaitingEq = false
	m.inEndTag = false
	m.curTagIsScript = false
	m.curTagIsStyle = false
	m.curTagTypeSeen = false
	m.curTagTypeValue = m.curTagTypeValue[:0]
	m.rawKind = rawKindNone
	m.rawMinify = false
	m.rawBuf = m.rawBuf[:0]
	m.closeWant = ""
	m.closeIdx = 0
	m.closeScanBuf = m.closeScanBuf[:0]
	m.commentVerbatim = false
	m.commentDashRun = 0
}

// Reset clears accumulated state and resets the tokenizer to start-of-stream
// (as if a fresh instance had been constructed), keeping configuration.
func (m *Minifier) Reset() { m.reset() }

func (m *Minifier) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := m.sink.Write(p)
	return err
}

func (m *Minifier) writeByte(c byte) error {
	m.byteBuf[0] = c
	_, err := m.sink.Write(m.byteBuf[:])
	return err
}

func (m *Minifier) writeString(s string) error {
	return m.write([]byte(s))
}

// Digest feeds chunk through the state machine, writing minified output to
// w as it becomes available. It may be called any number of times with
// arbitrarily sized chunks; state carries over between calls. If w returns
// an error, Digest stops and returns it immediately — the minifier's
// internal state remains consistent with whatever was successfully
// written.
func (m *Minifier) Digest(chunk []byte, w Sink) error {
	m.sink = w
	defer func() { m.sink = nil }()
	for _, c := range chunk {
		if err := m.step(c); err != nil {
			return err
		}
	}
	return nil
}

// Finalize flushes any residual UTF-8 continuation bytes and drops any
// pending whitespace decision. If the stream ended in the middle of a raw
// (script/style/code) body, the buffered bytes are flushed unminified with
// no synthesized close tag. Callers are expected to provide well-formed
// HTML; unterminated constructs simply round-trip the bytes consumed so
// far.
func (m *Minifier) Finalize(w Sink) error {
	m.sink = w
	defer func() { m.sink = nil }()

	if len(m.utf8Tail) > 0 {
		if err := m.write(m.utf8Tail); err != nil {
			return err
		}
		m.utf8Tail = m.utf8Tail[:0]
	}
	m.pendingWhitespace = false

	switch m.state {
	case stateRawBody:
		if err := m.write(m.rawBuf); err != nil {
			return err
		}
		if err := m.write(m.closeScanBuf); err != nil {
			return err
		}
	case stateRawPassthrough, stateRawCloseScan:
		if m.state == stateRawCloseScan && m.rawReturnState == stateRawBody {
			if err := m.write(m.rawBuf); err != nil {
				return err
			}
		}
		if err := m.write(m.closeScanBuf); err != nil {
			return err
		}
	}

	m.reset()
	return nil
}

// commitPendingSpace resolves a pending whitespace decision against the
// upcoming codepoint/token. nextIsCJK is only meaningful in Text context;
// elsewhere pass false.
func (m *Minifier) commitPendingSpace(nextIsCJK bool) error {
	if !m.pendingWhitespace {
		return nil
	}
	m.pendingWhitespace = false
	if !m.hasEmitted {
		return nil
	}
	if m.cjLast && nextIsCJK {
		return nil
	}
	return m.writeByte(' ')
}

// step advances the state machine by one byte, looping internally whenever
// a transition needs to reconsume the same byte in a new state (the classic
// tokenizer "reconsume" pattern).
func (m *Minifier) step(c byte) error {
	for {
		var reconsume bool
		var err error
		switch m.state {
		case stateText:
			reconsume, err = m.stepText(c)
		case stateTagStart:
			reconsume, err = m.stepTagStart(c)
		case stateTagName:
			reconsume, err = m.stepTagName(c)
		case stateEndTagSlash:
			reconsume, err = m.stepEndTagSlash(c)
		case stateEndTagName:
			reconsume, err = m.stepEndTagName(c)
		case stateInTag:
			reconsume, err = m.stepInTag(c)
		case stateAttrName:
			reconsume, err = m.stepAttrName(c)
		case stateAttrEq:
			reconsume, err = m.stepAttrEq(c)
		case stateAttrValueUnquoted:
			reconsume, err = m.stepAttrValueUnquoted(c)
		case stateAttrValueQuoted:
			reconsume, err = m.stepAttrValueQuoted(c)
		case stateSelfCloseSlash:
			reconsume, err = m.stepSelfCloseSlash(c)
		case stateMarkupBang:
			reconsume, err = m.stepMarkupBang(c)
		case stateCommentDash:
			reconsume, err = m.stepCommentDash(c)
		case stateComment:
			reconsume, err = m.stepComment(c)
		case stateDoctypeMatch:
			reconsume, err = m.stepDoctypeMatch(c)
		case stateDoctype:
			reconsume, err = m.stepDoctype(c)
		case stateBogusBang:
			reconsume, err = m.stepBogusBang(c)
		case stateRawBody, stateRawPassthrough:
			reconsume, err = m.stepRawContent(c)
		case stateRawCloseScan:
			reconsume, err = m.stepRawCloseScan(c)
		}
		if err != nil {
			return err
		}
		if !reconsume {
			return nil
		}
	}
}

// commitTextCodepoint handles one complete, already-assembled codepoint (1
// to 4 bytes) encountered in Text context: it resolves any pending
// whitespace against it, emits it, and updates the CJK/last-emitted
// bookkeeping.
func (m *Minifier) commitTextCodepoint(b []byte) error {
	isCJK := isCJKBytes(b)
	if err := m.commitPendingSpace(isCJK); err != nil {
		return err
	}
	if err := m.write(b); err != nil {
		return err
	}
	m.hasEmitted = true
	m.lastEmitted = b[len(b)-1]
	m.cjLast = isCJK
	return nil
}

func (m *Minifier) stepText(c byte) (bool, error) {
	if len(m.utf8Tail) > 0 {
		if c >= 0x80 && c <= 0xBF {
			m.utf8Tail = append(m.utf8Tail, c)
			if len(m.utf8Tail) == m.utf8TailWant {
				tail := m.utf8Tail
				m.utf8Tail = nil
				if err := m.commitTextCodepoint(tail); err != nil {
					return false, err
				}
			}
			return false, nil
		}
		// malformed sequence: flush what we have as non-CJK content, then
		// reconsume c from scratch.
		tail := m.utf8Tail
		m.utf8Tail = nil
		if err := m.commitTextCodepoint(tail); err != nil {
			return false, err
		}
		return true, nil
	}

	if c == '<' {
		m.state = stateTagStart
		return false, nil
	}
	if isForbiddenControl(c) {
		return false, nil
	}
	if isWhitespace(c) {
		m.pendingWhitespace = true
		return false, nil
	}
	n := utf8SeqLen(c)
	if n == 1 {
		return false, m.commitTextCodepoint([]byte{c})
	}
	m.utf8Tail = append(m.utf8Tail[:0], c)
	m.utf8TailWant = n
	return false, nil
}

func (m *Minifier) stepTagStart(c byte) (bool, error) {
	switch {
	case isAsciiLetter(c):
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		if err := m.writeByte('<'); err != nil {
			return false, err
		}
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		m.tagKind = tagKindOpen
		m.tagNameBuf.reset()
		m.tagNameBuf.push(c)
		m.tagNameOrig = append(m.tagNameOrig[:0], c)
		m.state = stateTagName
		return false, nil
	case c == '/':
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		if err := m.writeString("</"); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = '/'
		m.state = stateEndTagSlash
		return false, nil
	case c == '!':
		m.state = stateMarkupBang
		return false, nil
	case c == '?':
		// processing-instruction-like markup (e.g. XML prolog leftovers):
		// treated the same as other bogus markup starting with '<'.
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		if err := m.writeByte('<'); err != nil {
			return false, err
		}
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		m.state = stateBogusBang
		return false, nil
	default:
		// a '<' not followed by a tag/comment/doctype starter is literal
		// text in this element's content; re-emit it and reconsume c as
		// ordinary text.
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		if err := m.writeByte('<'); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = '<'
		m.cjLast = false
		m.state = stateText
		return true, nil
	}
}

// --- "<!" discrimination: comment / doctype / bogus markup ---

func (m *Minifier) stepMarkupBang(c byte) (bool, error) {
	switch {
	case c == '-':
		m.state = stateCommentDash
		return false, nil
	case isAsciiLetter(c) && lowerByte(c) == 'd':
		m.specialBuf = append(m.specialBuf[:0], c)
		m.state = stateDoctypeMatch
		return false, nil
	case c == '>':
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		if err := m.writeString("<!>"); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = '>'
		m.cjLast = false
		m.state = stateText
		return false, nil
	default:
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		if err := m.writeString("<!"); err != nil {
			return false, err
		}
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		m.state = stateBogusBang
		return false, nil
	}
}

func (m *Minifier) stepCommentDash(c byte) (bool, error) {
	if c == '-' {
		verbatim := !m.removeComments
		if verbatim {
			if err := m.commitPendingSpace(false); err != nil {
				return false, err
			}
			if err := m.writeString("<!--"); err != nil {
				return false, err
			}
			m.hasEmitted = true
			m.lastEmitted = '-'
			m.cjLast = false
		}
		m.commentVerbatim = verbatim
		m.commentDashRun = 0
		m.specialBuf = m.specialBuf[:0]
		m.state = stateComment
		return false, nil
	}
	// "<!-" followed by something other than another dash: bogus markup.
	if err := m.commitPendingSpace(false); err != nil {
		return false, err
	}
	if err := m.writeString("<!-"); err != nil {
		return false, err
	}
	m.hasEmitted = true
	m.lastEmitted = '-'
	if c == '>' {
		if err := m.writeByte('>'); err != nil {
			return false, err
		}
		m.lastEmitted = '>'
		m.cjLast = false
		m.state = stateText
		return false, nil
	}
	if err := m.writeByte(c); err != nil {
		return false, err
	}
	m.lastEmitted = c
	m.state = stateBogusBang
	return false, nil
}

func (m *Minifier) stepComment(c byte) (bool, error) {
	if m.commentVerbatim && !isForbiddenControl(c) {
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
	}
	if c == '-' {
		m.commentDashRun++
	} else if c == '>' && m.commentDashRun >= 2 {
		m.commentDashRun = 0
		m.state = stateText
		if m.commentVerbatim {
			m.cjLast = false
		} else {
			m.pendingWhitespace = true
		}
		return false, nil
	} else {
		m.commentDashRun = 0
	}
	return false, nil
}

func (m *Minifier) stepDoctypeMatch(c byte) (bool, error) {
	want := doctypeWord[len(m.specialBuf)]
	if lowerByte(c) == lowerByte(want) {
		m.specialBuf = append(m.specialBuf, c)
		if len(m.specialBuf) == len(doctypeWord) {
			if err := m.commitPendingSpace(false); err != nil {
				return false, err
			}
			if err := m.writeString("<!"); err != nil {
				return false, err
			}
			if err := m.write(m.specialBuf); err != nil {
				return false, err
			}
			m.hasEmitted = true
			m.lastEmitted = m.specialBuf[len(m.specialBuf)-1]
			m.specialBuf = m.specialBuf[:0]
			m.pendingWhitespace = false
			m.state = stateDoctype
		}
		return false, nil
	}
	// mismatch: bogus markup fallback.
	if err := m.commitPendingSpace(false); err != nil {
		return false, err
	}
	if err := m.writeString("<!"); err != nil {
		return false, err
	}
	if err := m.write(m.specialBuf); err != nil {
		return false, err
	}
	m.hasEmitted = true
	m.lastEmitted = m.specialBuf[len(m.specialBuf)-1]
	m.specialBuf = m.specialBuf[:0]
	if c == '>' {
		if err := m.writeByte('>'); err != nil {
			return false, err
		}
		m.lastEmitted = '>'
		m.cjLast = false
		m.state = stateText
		return false, nil
	}
	if err := m.writeByte(c); err != nil {
		return false, err
	}
	m.lastEmitted = c
	m.state = stateBogusBang
	return false, nil
}

func (m *Minifier) stepDoctype(c byte) (bool, error) {
	switch {
	case c == '>':
		m.pendingWhitespace = false
		if err := m.writeByte('>'); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = '>'
		m.cjLast = false
		m.state = stateText
		return false, nil
	case isForbiddenControl(c):
		return false, nil
	case isWhitespace(c):
		m.pendingWhitespace = true
		return false, nil
	default:
		if m.pendingWhitespace {
			if err := m.writeByte(' '); err != nil {
				return false, err
			}
			m.pendingWhitespace = false
		}
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		return false, nil
	}
}

func (m *Minifier) stepBogusBang(c byte) (bool, error) {
	if isForbiddenControl(c) {
		return false, nil
	}
	if err := m.writeByte(c); err != nil {
		return false, err
	}
	m.hasEmitted = true
	m.lastEmitted = c
	if c == '>' {
		m.cjLast = false
		m.state = stateText
	}
	return false, nil
}

// bytesEqualFold is a tiny case-insensitive ASCII byte-slice comparison,
// used instead of bytes.EqualFold where we already know both sides are
// ASCII (avoids pulling in unicode case-folding for a byte-oriented check).
func bytesEqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}
	return true
}
