package html

// isNameContinue reports whether c may continue a tag or attribute name
// after its first character (letters, digits, and hyphens, covering custom
// elements and data-* style names).
func isNameContinue(c byte) bool {
	return isAsciiLetter(c) || (c >= '0' && c <= '9') || c == '-'
}

func (m *Minifier) stepTagName(c byte) (bool, error) {
	switch {
	case isWhitespace(c):
		m.finalizeTagName()
		m.pendingWhitespace = true
		m.state = stateInTag
		return false, nil
	case c == '/':
		m.finalizeTagName()
		m.state = stateSelfCloseSlash
		return false, nil
	case c == '>':
		m.finalizeTagName()
		m.state = stateInTag
		return true, nil
	case isNameContinue(c):
		m.tagNameBuf.push(c)
		m.tagNameOrig = append(m.tagNameOrig, c)
		return false, m.writeByte(c)
	default:
		// Not a valid name byte inside a tag name; treat the tag as over and
		// reconsume in the hub state rather than get stuck.
		m.finalizeTagName()
		m.state = stateInTag
		return true, nil
	}
}

func (m *Minifier) finalizeTagName() {
	m.curTagIsScript = m.tagNameBuf.is("script")
	m.curTagIsStyle = m.tagNameBuf.is("style")
}

func (m *Minifier) stepEndTagSlash(c byte) (bool, error) {
	if isAsciiLetter(c) {
		m.tagNameBuf.reset()
		m.tagNameBuf.push(c)
		m.state = stateEndTagName
		return false, m.writeByte(c)
	}
	if c == '>' {
		if err := m.writeByte('>'); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = '>'
		m.cjLast = false
		m.state = stateText
		return false, nil
	}
	if err := m.writeByte(c); err != nil {
		return false, err
	}
	m.hasEmitted = true
	m.lastEmitted = c
	m.state = stateBogusBang
	return false, nil
}

func (m *Minifier) stepEndTagName(c byte) (bool, error) {
	switch {
	case isNameContinue(c):
		m.tagNameBuf.push(c)
		return false, m.writeByte(c)
	case isWhitespace(c):
		m.inEndTag = true
		m.state = stateInTag
		return false, nil
	case c == '>':
		m.inEndTag = true
		m.state = stateInTag
		return true, nil
	default:
		m.inEndTag = true
		m.state = stateInTag
		return true, nil
	}
}

// stepInTag is the shared hub for both start-tag attribute scanning and
// end-tag trailing-whitespace scanning (m.inEndTag distinguishes them).
func (m *Minifier) stepInTag(c byte) (bool, error) {
	if m.inEndTag {
		switch c {
		case '>':
			m.pendingWhitespace = false
			if err := m.writeByte('>'); err != nil {
				return false, err
			}
			m.hasEmitted = true
			m.lastEmitted = '>'
			m.cjLast = false
			m.inEndTag = false
			m.state = stateText
			return false, nil
		default:
			// end tags carry no attributes; anything besides '>' here is
			// malformed trailing content and is dropped.
			return false, nil
		}
	}

	switch {
	case c == '>':
		m.pendingWhitespace = false
		return false, m.commitTagOpenEnd(false)
	case c == '/':
		m.pendingWhitespace = false
		m.state = stateSelfCloseSlash
		return false, nil
	case isWhitespace(c):
		m.pendingWhitespace = true
		return false, nil
	case c == '=' && m.awaitingEq:
		m.awaitingEq = false
		m.pendingWhitespace = false
		m.quote = 0
		m.specialBuf = m.specialBuf[:0]
		m.state = stateAttrEq
		return false, nil
	case isAsciiLetter(c):
		m.awaitingEq = false
		if err := m.commitPendingSpace(false); err != nil {
			return false, err
		}
		m.attrNameBuf.reset()
		m.attrNameBuf.push(c)
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		m.state = stateAttrName
		return false, nil
	default:
		// stray byte between attributes; drop it rather than emit garbage.
		return false, nil
	}
}

func (m *Minifier) stepAttrName(c byte) (bool, error) {
	switch {
	case isNameContinue(c):
		m.attrNameBuf.push(c)
		return false, m.writeByte(c)
	case isWhitespace(c):
		m.attrIsSpecial = isSpecialAttr(m.attrNameBuf.bytes(), m.curTagIsScript || m.curTagIsStyle)
		m.awaitingEq = true
		m.pendingWhitespace = true
		m.state = stateInTag
		return false, nil
	case c == '=':
		m.attrIsSpecial = isSpecialAttr(m.attrNameBuf.bytes(), m.curTagIsScript || m.curTagIsStyle)
		m.quote = 0
		m.specialBuf = m.specialBuf[:0]
		m.state = stateAttrEq
		return false, nil
	case c == '>' || c == '/':
		m.state = stateInTag
		return true, nil
	default:
		// name ends at any other delimiter byte; treat as boolean attribute.
		m.state = stateInTag
		return true, nil
	}
}

func (m *Minifier) stepAttrEq(c byte) (bool, error) {
	switch {
	case isWhitespace(c) || isForbiddenControl(c):
		return false, nil
	case c == '"' || c == '\'':
		m.quote = c
		m.eqCommitted = false
		m.state = stateAttrValueQuoted
		return false, nil
	case c == '>':
		// attr= with no value at all: collapse to a bare boolean attribute.
		m.state = stateInTag
		return true, nil
	default:
		m.quote = 0
		m.eqCommitted = false
		m.state = stateAttrValueUnquoted
		return true, nil
	}
}

func (m *Minifier) stepAttrValueQuoted(c byte) (bool, error) {
	if c == m.quote {
		if err := m.finalizeAttrValue(true); err != nil {
			return false, err
		}
		m.state = stateInTag
		return false, nil
	}
	if isForbiddenControl(c) {
		return false, nil
	}
	if !m.eqCommitted && isWhitespace(c) {
		// A value seen so far made entirely of whitespace hasn't proven it
		// isn't all-whitespace yet (which collapses like ""): buffer it
		// instead of committing =/the opening quote.
		m.specialBuf = append(m.specialBuf, c)
		return false, nil
	}
	if !m.eqCommitted {
		if err := m.writeByte('='); err != nil {
			return false, err
		}
		if err := m.writeByte(m.quote); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = m.quote
		m.eqCommitted = true
		if !m.attrIsSpecial && len(m.specialBuf) > 0 {
			// flush the buffered leading whitespace verbatim now that a
			// non-whitespace byte has proven this value isn't all-whitespace.
			if err := m.write(m.specialBuf); err != nil {
				return false, err
			}
			m.lastEmitted = m.specialBuf[len(m.specialBuf)-1]
			m.specialBuf = m.specialBuf[:0]
		}
	}
	if m.attrIsSpecial {
		m.specialBuf = append(m.specialBuf, c)
		return false, nil
	}
	if err := m.writeByte(c); err != nil {
		return false, err
	}
	m.hasEmitted = true
	m.lastEmitted = c
	return false, nil
}

func (m *Minifier) stepAttrValueUnquoted(c byte) (bool, error) {
	switch {
	case isWhitespace(c):
		if err := m.finalizeAttrValue(false); err != nil {
			return false, err
		}
		m.pendingWhitespace = true
		m.state = stateInTag
		return false, nil
	case c == '>':
		if err := m.finalizeAttrValue(false); err != nil {
			return false, err
		}
		m.state = stateInTag
		return true, nil
	case isForbiddenControl(c):
		return false, nil
	default:
		if !m.eqCommitted {
			if err := m.writeByte('='); err != nil {
				return false, err
			}
			m.hasEmitted = true
			m.lastEmitted = '='
			m.eqCommitted = true
		}
		if m.attrIsSpecial {
			m.specialBuf = append(m.specialBuf, c)
			return false, nil
		}
		if err := m.writeByte(c); err != nil {
			return false, err
		}
		m.hasEmitted = true
		m.lastEmitted = c
		return false, nil
	}
}

// finalizeAttrValue is called once a value (quoted or unquoted) has fully
// been scanned. For unquoted values eqCommitted is always true by
// construction (AttrEq only enters AttrValueUnquoted on a genuine content
// byte, which immediately commits '='). For quoted values, closingQuote
// emits the closing quote byte when the value actually had content.
func (m *Minifier) finalizeAttrValue(closingQuote bool) error {
	if !m.eqCommitted {
		// quoted value was empty or all-whitespace: it never got a
		// non-whitespace content byte, so it collapses away entirely
		// (including the opening quote and any buffered whitespace, never
		// emitted).
		m.quote = 0
		m.attrIsSpecial = false
		m.specialBuf = m.specialBuf[:0]
		return nil
	}
	if m.attrIsSpecial {
		trimmed := trimCollapseWhitespace(m.specialBuf)
		if err := m.write(trimmed); err != nil {
			return err
		}
		if len(trimmed) > 0 {
			m.hasEmitted = true
			m.lastEmitted = trimmed[len(trimmed)-1]
		}
		if m.attrNameBuf.is("type") && (m.curTagIsScript || m.curTagIsStyle) {
			m.curTagTypeValue = append(m.curTagTypeValue[:0], trimmed...)
			m.curTagTypeSeen = true
		}
	}
	if closingQuote {
		if err := m.writeByte(m.quote); err != nil {
			return err
		}
		m.hasEmitted = true
		m.lastEmitted = m.quote
	}
	m.quote = 0
	m.attrIsSpecial = false
	m.eqCommitted = false
	return nil
}

func (m *Minifier) stepSelfCloseSlash(c byte) (bool, error) {
	if c == '>' {
		return false, m.commitTagOpenEnd(true)
	}
	// stray '/' not followed by '>': ignore it and fall back to attribute
	// scanning with this byte reconsidered.
	m.state = stateInTag
	return true, nil
}

// commitTagOpenEnd is reached on the '>' that closes a start tag (or the
// "/>" of a self-closing one). It decides whether the element's content is
// ordinary text (the common case) or one of the five raw elements that
// need dedicated buffering/passthrough handling.
func (m *Minifier) commitTagOpenEnd(selfClose bool) error {
	name := string(m.tagNameBuf.bytes())
	if selfClose {
		if err := m.writeString("/>"); err != nil {
			return err
		}
		m.hasEmitted = true
		m.lastEmitted = '>'
		m.cjLast = false
		m.resetTagScratch()
		m.state = stateText
		return nil
	}
	if err := m.writeByte('>'); err != nil {
		return err
	}
	m.hasEmitted = true
	m.lastEmitted = '>'
	m.cjLast = false

	var kind rawKind
	var doMinify bool
	switch name {
	case "script":
		kind = rawKindScript
		doMinify = m.minifyCode && recognizedMediaType(rawKindScript, m.curTagTypeValue)
	case "style":
		kind = rawKindStyle
		doMinify = m.minifyCode && recognizedMediaType(rawKindStyle, m.curTagTypeValue)
	case "code":
		kind = rawKindCode
		doMinify = m.minifyCode
	case "pre":
		kind = rawKindPre
		doMinify = false
	case "textarea":
		kind = rawKindTextarea
		doMinify = false
	default:
		m.resetTagScratch()
		m.state = stateText
		return nil
	}

	m.rawKind = kind
	m.rawMinify = doMinify
	m.rawBuf = m.rawBuf[:0]
	m.closeWant = "</" + rawCloseName(kind)
	m.closeIdx = 0
	m.closeScanBuf = m.closeScanBuf[:0]
	m.resetTagScratch()
	if doMinify {
		m.state = stateRawBody
	} else {
		m.state = stateRawPassthrough
	}
	return nil
}

func (m *Minifier) resetTagScratch() {
	m.tagNameBuf.reset()
	m.tagNameOrig = m.tagNameOrig[:0]
	m.curTagIsScript = false
	m.curTagIsStyle = false
	m.curTagTypeSeen = false
	m.curTagTypeValue = m.curTagTypeValue[:0]
	m.attrNameBuf.reset()
	m.attrIsSpecial = false
	m.awaitingEq = false
	m.inEndTag = false
}
