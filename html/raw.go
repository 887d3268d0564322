package html

import "bytes"

// stepRawContent handles bytes inside a raw element's body, in either of
// its two flavors: stateRawBody buffers bytes for later minification,
// stateRawPassthrough streams them through untouched. Both share close-tag
// detection: any '<' diverts into stateRawCloseScan to tentatively match
// "</tagname" without losing false alarms.
func (m *Minifier) stepRawContent(c byte) (bool, error) {
	if c == '<' {
		m.rawReturnState = m.state
		m.closeScanBuf = append(m.closeScanBuf[:0], c)
		m.closeIdx = 1
		m.state = stateRawCloseScan
		return false, nil
	}
	if m.state == stateRawPassthrough {
		if isForbiddenControl(c) {
			return false, nil
		}
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		return false, nil
	}
	if !isForbiddenControl(c) {
		m.rawBuf = append(m.rawBuf, c)
	}
	return false, nil
}

// stepRawCloseScan matches the tentative sequence that followed a '<'
// inside a raw body against "</" + the element's own tag name. A mismatch
// at any point, including a name that continues past the expected length
// (e.g. "</scripty"), flushes the tentative bytes back as ordinary raw
// content and resumes matching from scratch — so a false alarm like
// "</scr</script>" still finds the real close tag.
func (m *Minifier) stepRawCloseScan(c byte) (bool, error) {
	want := m.closeWant
	if m.closeIdx < len(want) {
		if lowerByte(c) == want[m.closeIdx] {
			m.closeScanBuf = append(m.closeScanBuf, c)
			m.closeIdx++
			return false, nil
		}
		return true, m.flushRawTentative()
	}

	if isNameContinue(c) {
		m.closeScanBuf = append(m.closeScanBuf, c)
		if err := m.flushRawTentative(); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := m.finishRawElement(); err != nil {
		return false, err
	}
	m.inEndTag = true
	m.state = stateInTag
	return true, nil
}

// flushRawTentative abandons the current close-tag match attempt, routing
// the bytes collected so far back into the raw body exactly as if the
// close-scan had never started.
func (m *Minifier) flushRawTentative() error {
	buf := m.closeScanBuf
	m.closeScanBuf = nil
	m.closeIdx = 0
	returnState := m.rawReturnState
	m.state = returnState
	if returnState == stateRawPassthrough {
		if err := m.write(buf); err != nil {
			return err
		}
		if len(buf) > 0 {
			m.hasEmitted = true
			m.lastEmitted = buf[len(buf)-1]
		}
		return nil
	}
	for _, b := range buf {
		if !isForbiddenControl(b) {
			m.rawBuf = append(m.rawBuf, b)
		}
	}
	return nil
}

// finishRawElement runs once the closing tag of a raw element has been
// fully recognized. It minifies the buffered body (RawBody case) or simply
// proceeds (RawPassthrough already streamed its bytes as they arrived),
// then emits the close tag bytes exactly as they appeared in the source.
func (m *Minifier) finishRawElement() error {
	var out []byte
	switch m.rawKind {
	case rawKindScript:
		if m.rawMinify {
			out = minifyJS(m.rawBuf)
		} else {
			out = m.rawBuf
		}
	case rawKindStyle:
		if m.rawMinify {
			out = minifyCSS(m.rawBuf)
		} else {
			out = m.rawBuf
		}
	case rawKindCode:
		switch {
		case !m.rawMinify:
			out = m.rawBuf
		case m.codeAsHTML:
			out = minifyNestedHTML(m.rawBuf, m)
		default:
			out = minifyJS(m.rawBuf)
		}
	default:
		out = m.rawBuf
	}
	out = stripForbiddenControl(out)
	if err := m.write(out); err != nil {
		return err
	}
	if err := m.write(m.closeScanBuf); err != nil {
		return err
	}
	if len(m.closeScanBuf) > 0 {
		m.hasEmitted = true
		m.lastEmitted = m.closeScanBuf[len(m.closeScanBuf)-1]
	}
	m.cjLast = false
	m.rawKind = rawKindNone
	m.rawMinify = false
	m.rawBuf = m.rawBuf[:0]
	m.closeWant = ""
	m.closeIdx = 0
	m.closeScanBuf = m.closeScanBuf[:0]
	return nil
}

// stripForbiddenControl drops bytes that must never appear in output from a
// minified or passed-through raw body. Raw elements preserved verbatim
// (pre/textarea/unminified code) never reach this function with a non-empty
// buffer, since their bytes stream out directly as they arrive.
func stripForbiddenControl(b []byte) []byte {
	hasForbidden := false
	for _, c := range b {
		if isForbiddenControl(c) {
			hasForbidden = true
			break
		}
	}
	if !hasForbidden {
		return b
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if !isForbiddenControl(c) {
			out = append(out, c)
		}
	}
	return out
}

// minifyNestedHTML recursively minifies a <code> body as HTML, using the
// same configuration (minus further codeAsHTML recursion concerns) as the
// enclosing Minifier.
func minifyNestedHTML(src []byte, parent *Minifier) []byte {
	nested := New()
	nested.SetRemoveComments(parent.removeComments)
	nested.SetMinifyCode(parent.minifyCode)
	nested.SetCodeAsHTML(parent.codeAsHTML)
	var buf bytes.Buffer
	if err := nested.Digest(src, &buf); err != nil {
		return src
	}
	if err := nested.Finalize(&buf); err != nil {
		return src
	}
	return buf.Bytes()
}
